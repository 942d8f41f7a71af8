package job

import (
	"context"
	"errors"

	"github.com/torxlabs/go-treasury/internal/common/ctxdata"
	"github.com/torxlabs/go-treasury/internal/common/flag"
	"github.com/torxlabs/go-treasury/internal/common/log"
	"github.com/torxlabs/go-treasury/internal/config"
	v1consolidation "github.com/torxlabs/go-treasury/internal/deliveries/job/v1/consolidation"
	"github.com/torxlabs/go-treasury/internal/services"

	"github.com/google/uuid"
)

type JobRoutes map[string]map[string]func(ctx context.Context, flag flag.Job) error

type Job struct {
	Routes JobRoutes
}

func New(cfg config.Config, srv *services.Services) *Job {
	v1group := "v1"

	jobRoutes := map[string]map[string]func(ctx context.Context, flag flag.Job) error{
		v1group: v1consolidation.Routes(srv.Orchestrator),
		// add other version routes
	}

	return &Job{jobRoutes}
}

func (j *Job) Start(ctx context.Context, flag flag.Job) {
	if fn, ok := j.Routes[flag.Version][flag.JobName]; ok {
		var err error
		ctx = ctxdata.Sets(ctx, ctxdata.SetCorrelationId(uuid.New().String()))

		defer func() {
			log.LogJob(ctx, flag.JobName, flag.Version, err)
		}()

		if err = fn(ctx, flag); err != nil {
			return
		}
	} else {
		log.LogJob(ctx, flag.JobName, flag.Version, errors.New("invalid version or job name"))
	}
}
