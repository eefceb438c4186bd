package obs

import "context"

// FormSessionHeader carries the client's form session id for log correlation.
const FormSessionHeader = "X-Form-Session"

// routePatternKey is the context key storing matched route pattern.
type routePatternKey struct{}

// WithRoutePattern pins the route label used by the logging and metrics middleware.
// Handlers served outside a chi router use it to avoid the raw path.
func WithRoutePattern(ctx context.Context, pattern string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, routePatternKey{}, pattern)
}

// RoutePatternFromContext extracts the route pattern from context if present.
func RoutePatternFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(routePatternKey{}).(string); ok {
		return v
	}
	return ""
}
