package handler

import (
	"github.com/iliyamo/investor-portal/internal/metrics"
	"github.com/iliyamo/investor-portal/internal/repository"
	"github.com/iliyamo/investor-portal/internal/storage"
)

// AdminHandler bundles everything the admin console touches: pledges
// and their confirmations, income credits, share-sale reviews, profile
// management, marketing content, notification recipients and the
// metrics sync.
type AdminHandler struct {
	Profiles      *repository.ProfileRepo
	Investments   *repository.InvestmentRepo
	Confirmations *repository.ConfirmationRepo
	Income        *repository.IncomeRepo
	ShareSales    *repository.ShareSaleRepo
	Settings      *repository.SettingsRepo
	Content       *repository.ContentRepo
	Emails        *repository.AdminEmailRepo
	Syncer        *metrics.Syncer
	Store         *storage.Store // nil when object storage is not configured
}

// NewAdminHandler constructs the admin handler and panics on missing
// repositories. Store may be nil.
func NewAdminHandler(
	profiles *repository.ProfileRepo,
	investments *repository.InvestmentRepo,
	confirmations *repository.ConfirmationRepo,
	income *repository.IncomeRepo,
	shareSales *repository.ShareSaleRepo,
	settings *repository.SettingsRepo,
	content *repository.ContentRepo,
	emails *repository.AdminEmailRepo,
	syncer *metrics.Syncer,
	store *storage.Store,
) *AdminHandler {
	if profiles == nil || investments == nil || confirmations == nil || income == nil ||
		shareSales == nil || settings == nil || content == nil || emails == nil || syncer == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{
		Profiles:      profiles,
		Investments:   investments,
		Confirmations: confirmations,
		Income:        income,
		ShareSales:    shareSales,
		Settings:      settings,
		Content:       content,
		Emails:        emails,
		Syncer:        syncer,
		Store:         store,
	}
}
