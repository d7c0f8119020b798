package mocks

import (
	"context"

	"image-verifier/core/client"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of client.Client
type Client struct {
	mock.Mock
}

func (m *Client) Get(ctx context.Context, path string) (*client.Response, error) {
	args := m.Called(ctx, path)
	if resp, ok := args.Get(0).(*client.Response); ok {
		return resp, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) BaseURL() string {
	args := m.Called()
	return args.String(0)
}
