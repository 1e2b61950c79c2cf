//go:build lambda

package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
	"github.com/davecgh/go-spew/spew"
	"github.com/gin-gonic/gin"
	"github.com/protectedpay/protectedpay-api/internal/app"
	"github.com/protectedpay/protectedpay-api/internal/logger"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Lambda mode serves the API only. Index with the server binary or `ppay watch`.
var (
	ginLambda   *ginadapter.GinLambda
	application *app.App
)

func init() {
	var (
		router *gin.Engine
		err    error
	)
	_, application, router, err = setup(context.Background())
	if err != nil {
		logger.Fatal("Failed to initialize Lambda handler", zap.Error(err))
	}
	ginLambda = ginadapter.New(router)
}

func Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	if logger.Log.Core().Enabled(zapcore.DebugLevel) {
		logger.Debug("Received Lambda request",
			zap.String("path", req.Path),
			zap.String("request", spew.Sdump(req)),
		)
	}
	return ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	defer func() { _ = logger.Sync() }()
	defer application.Close()
	lambda.Start(Handler)
}
