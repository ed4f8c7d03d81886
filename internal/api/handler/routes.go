package handler

import (
	"net/http"

	"github.com/devhub/pinche-admin-api/internal/api/handler/router"
	"github.com/devhub/pinche-admin-api/internal/usecases/admin"
	"github.com/devhub/pinche-admin-api/internal/usecases/authenticating"
	"github.com/devhub/pinche-admin-api/internal/usecases/ordering"
	"github.com/devhub/pinche-admin-api/internal/usecases/ranking"
	"github.com/devhub/pinche-admin-api/pkg/middleware"
)

// adminOnly valida o token e exige o perfil de administrador
func adminOnly(validator middleware.TokenValidator) []func(http.Handler) http.Handler {
	return []func(http.Handler) http.Handler{
		middleware.AuthMiddleware(validator),
		middleware.AdminOnly(),
	}
}

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	protected := adminOnly(service)

	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: protected,
		},
	}
}

func Admin(service admin.AdminService, validator middleware.TokenValidator) []router.Route {
	protected := adminOnly(validator)

	return []router.Route{
		{
			Path:        "/v1/admin/infos",
			Method:      http.MethodGet,
			Handler:     GetAdminInfos(service),
			Middlewares: protected,
		},
		{
			Path:        "/v1/admin/records",
			Method:      http.MethodGet,
			Handler:     GetAdminRecords(service),
			Middlewares: protected,
		},
		{
			Path:        "/v1/admin/owners/ranking",
			Method:      http.MethodGet,
			Handler:     GetOwnerRanking(service),
			Middlewares: protected,
		},
	}
}

func OwnerRanking(service ranking.RankingService, validator middleware.TokenValidator) []router.Route {
	protected := adminOnly(validator)

	return []router.Route{
		{
			Path:        "/v1/admin/owners/ranking/snapshot",
			Method:      http.MethodGet,
			Handler:     GetOwnerRankingSnapshot(service),
			Middlewares: protected,
		},
	}
}

func Orders(service ordering.OrderService, validator middleware.TokenValidator) []router.Route {
	protected := adminOnly(validator)

	return []router.Route{
		{
			Path:        "/v1/orders",
			Method:      http.MethodGet,
			Handler:     ListOrders(service),
			Middlewares: protected,
		},
		{
			Path:        "/v1/orders",
			Method:      http.MethodPost,
			Handler:     CreateOrder(service),
			Middlewares: protected,
		},
		{
			Path:        "/v1/orders/:id",
			Method:      http.MethodGet,
			Handler:     GetOrder(service),
			Middlewares: protected,
		},
		{
			Path:        "/v1/orders/:id",
			Method:      http.MethodPut,
			Handler:     UpdateOrder(service),
			Middlewares: protected,
		},
		{
			Path:        "/v1/orders/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteOrder(service),
			Middlewares: protected,
		},
		{
			Path:        "/v1/infos/:id/orders",
			Method:      http.MethodGet,
			Handler:     ListOrdersByInfo(service),
			Middlewares: protected,
		},
	}
}

func CronJobs(services CronJobServices, validator middleware.TokenValidator) []router.Route {
	protected := adminOnly(validator)

	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: protected,
		},
		{
			Path:        "/v1/crons/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: protected,
		},
	}
}
