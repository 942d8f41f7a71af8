package log

import (
	"context"
)

func LogJob(ctx context.Context, jobName, version string, err error) {
	field := []Field{
		String("job-name", jobName),
		String("version", version),
	}
	if err != nil {
		field = append(field, String("status", "fail"), Err(err))
		Warn(ctx, "[JOB]", field...)
	} else {
		field = append(field, String("status", "success"))
		Info(ctx, "[JOB]", field...)
	}
}
