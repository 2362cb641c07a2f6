package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/flttx/medi-manage-platform-sub000/config"
	"github.com/flttx/medi-manage-platform-sub000/internal/api/http/handler"
	"github.com/flttx/medi-manage-platform-sub000/internal/notify"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/appointment"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/billing"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/chat"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/imaging"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/inventory"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/laborder"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/patient"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/perio"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/plan"
	"github.com/flttx/medi-manage-platform-sub000/internal/service/record"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	Presenter      *notify.Presenter
	PatientSvc     patient.Service
	AppointmentSvc appointment.Service
	RecordSvc      record.Service
	PlanSvc        plan.Service
	BillingSvc     billing.Service
	InventorySvc   inventory.Service
	PerioSvc       perio.Service
	ImagingSvc     imaging.Service
	ChatSvc        chat.Service
	LabOrderSvc    laborder.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	recordH := handler.NewRecordHandler(r.p.RecordSvc)
	planH := handler.NewPlanHandler(r.p.PlanSvc)
	billingH := handler.NewBillingHandler(r.p.BillingSvc)
	inventoryH := handler.NewInventoryHandler(r.p.InventorySvc)
	perioH := handler.NewPerioHandler(r.p.PerioSvc)
	imagingH := handler.NewImagingHandler(r.p.ImagingSvc)
	chatH := handler.NewChatHandler(r.p.ChatSvc)
	labOrderH := handler.NewLabOrderHandler(r.p.LabOrderSvc)
	notificationH := handler.NewNotificationHandler(r.p.Presenter)

	api := app.Group("/api/v1")

	r.registerPatientRoutes(api, patientH)
	r.registerAppointmentRoutes(api, appointmentH)
	r.registerClinicalRoutes(api, recordH, perioH, imagingH)
	r.registerPlanRoutes(api, planH)
	r.registerBillingRoutes(api, billingH)
	r.registerInventoryRoutes(api, inventoryH)
	r.registerChatRoutes(api, chatH)
	r.registerLabOrderRoutes(api, labOrderH)
	r.registerNotificationRoutes(api, notificationH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
