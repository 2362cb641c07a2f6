package app

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/flttx/medi-manage-platform-sub000/config"
	"github.com/flttx/medi-manage-platform-sub000/internal/replication"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/appointment"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/automation"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/billing"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/chat"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/imaging"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/inventory"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/laborder"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/patient"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/perio"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/plan"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/record"
	"github.com/flttx/medi-manage-platform-sub000/internal/store"
	"github.com/flttx/medi-manage-platform-sub000/pkg/observability"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvideAutomationEngine,
		ProvidePatientService,
		ProvideAppointmentService,
		ProvideInventoryService,
		ProvideBillingService,
		ProvideRecordService,
		ProvidePlanService,
		ProvidePerioService,
		ProvideImagingService,
		ProvideChatService,
		ProvideLabOrderService,
	),
)

// ProvideAutomationEngine builds the engine from the configured pricing
// rules, falling back to the built-in table when none are set.
func ProvideAutomationEngine(cfg *config.Config) *automation.Engine {
	rules := automation.DefaultPriceRules()
	if len(cfg.Billing.Rules) > 0 {
		rules = rules[:0]
		for _, r := range cfg.Billing.Rules {
			rules = append(rules, automation.PriceRule{Keyword: r.Keyword, Price: r.Price})
		}
	}
	defaultPrice := cfg.Billing.DefaultPrice
	if defaultPrice == 0 {
		defaultPrice = automation.DefaultFlatPrice
	}
	return automation.New(rules, defaultPrice)
}

func ProvidePatientService(st *store.Store, repl *replication.Replicator, cfg *config.Config) patient.Service {
	return patient.New(st, repl, cfg.Region.PhoneRegion)
}

func ProvideAppointmentService(st *store.Store, repl *replication.Replicator) appointment.Service {
	return appointment.New(st, repl)
}

func ProvideInventoryService(st *store.Store) inventory.Service {
	return inventory.New(st)
}

func ProvideBillingService(st *store.Store, repl *replication.Replicator) billing.Service {
	return billing.New(st, repl)
}

func ProvideRecordService(
	st *store.Store,
	repl *replication.Replicator,
	engine *automation.Engine,
	inv inventory.Service,
	bill billing.Service,
	metrics *observability.Metrics,
) record.Service {
	return record.New(st, repl, engine, inv, bill, metrics, slog.Default())
}

func ProvidePlanService(st *store.Store, repl *replication.Replicator) plan.Service {
	return plan.New(st, repl)
}

func ProvidePerioService(st *store.Store, repl *replication.Replicator) perio.Service {
	return perio.New(st, repl)
}

func ProvideImagingService(st *store.Store, repl *replication.Replicator) imaging.Service {
	return imaging.New(st, repl)
}

func ProvideChatService(st *store.Store, repl *replication.Replicator) chat.Service {
	return chat.New(st, repl)
}

func ProvideLabOrderService(st *store.Store, repl *replication.Replicator) laborder.Service {
	return laborder.New(st, repl)
}
