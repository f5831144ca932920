package workflow

import (
	"context"
	"errors"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/temporal"
)

// ActivityErrorTyping tags untyped activity errors with the activity name so
// the Temporal UI shows e.g. "GenerateReportFile" instead of a generic
// ApplicationError.
type ActivityErrorTyping struct {
	interceptor.WorkerInterceptorBase
}

func (*ActivityErrorTyping) InterceptActivity(_ context.Context, next interceptor.ActivityInboundInterceptor) interceptor.ActivityInboundInterceptor {
	return &typedActivityErrors{ActivityInboundInterceptorBase: interceptor.ActivityInboundInterceptorBase{Next: next}}
}

type typedActivityErrors struct {
	interceptor.ActivityInboundInterceptorBase
}

func (t *typedActivityErrors) ExecuteActivity(ctx context.Context, in *interceptor.ExecuteActivityInput) (any, error) {
	result, err := t.Next.ExecuteActivity(ctx, in)
	if err == nil {
		return result, nil
	}
	var appErr *temporal.ApplicationError
	if errors.As(err, &appErr) && appErr.Type() != "" {
		return result, err
	}
	return result, temporal.NewApplicationError(err.Error(), activity.GetInfo(ctx).ActivityType.Name, err)
}
