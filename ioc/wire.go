//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/quiz/internal/quiz"
	"github.com/ecodeclub/quiz/internal/staff"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ, InitSession)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		quiz.InitModule,
		staff.InitModule,
		wire.FieldsOf(new(*quiz.Module), "Hdl", "AccountMiddleware",
			"AdminCategoryHdl", "AdminQuestionHdl", "AdminTestCaseHdl",
			"AdminAccountHdl", "AdminTestHdl", "TokenRepairJob"),
		wire.FieldsOf(new(*staff.Module), "Hdl"),
		initGinxServer,
		InitAdminServer,
		initCronJobs)
	return new(App), nil
}
