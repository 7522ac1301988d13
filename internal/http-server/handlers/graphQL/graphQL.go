package graphQL

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/handler"
)

// New serves schema over HTTP. The GraphiQL explorer is only rendered for
// browser requests and only when graphiql is set.
func New(log *slog.Logger, schema graphql.Schema, graphiql bool) http.Handler {
	const op = "handlers.graphQL.New"

	log = log.With(slog.String("op", op))

	return handler.New(&handler.Config{
		Schema:   &schema,
		Pretty:   true,
		GraphiQL: graphiql,
		ResultCallbackFn: func(ctx context.Context, params *graphql.Params, result *graphql.Result, _ []byte) {
			if !result.HasErrors() {
				log.Info("graphql request served", slog.String("operation", params.OperationName))
				return
			}

			for _, e := range result.Errors {
				log.Warn("graphql request returned error",
					slog.String("operation", params.OperationName),
					slog.String("error", e.Message),
				)
			}
		},
	})
}
