package main

import (
	"context"
	"strings"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"webshop-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	// Convert API Gateway event to generic request
	req := &lambda.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
	}

	shopHandler := container.ShopHandler

	// Route the request
	var resp *lambda.Response

	switch {
	case req.Method == "POST" && strings.HasSuffix(req.Path, "/shops"):
		resp, err = shopHandler.HandleCreate(ctx, req)
	case req.Method == "GET" && strings.HasSuffix(req.Path, "/shops"):
		resp, err = shopHandler.HandleList(ctx, req)
	case req.Method == "GET" && req.PathParam("id") != "":
		resp, err = shopHandler.HandleGet(ctx, req)
	case req.Method == "PUT" && req.PathParam("id") != "":
		resp, err = shopHandler.HandleUpdate(ctx, req)
	case req.Method == "DELETE" && req.PathParam("id") != "":
		resp, err = shopHandler.HandleDelete(ctx, req)
	default:
		resp = &lambda.Response{
			StatusCode: 404,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       []byte(`{"error": "Not found"}`),
		}
	}

	if err != nil {
		container.Logger.WithError(err).Error("shop handler failed")
		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"error": "Internal server error"}`,
		}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func main() {
	awslambda.Start(handler)
}
