package repository

import (
	"context"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// unprocessedDoer answers every BatchGetItem with the key left unprocessed
// and fires onRead once the SDK has consumed the body.
type unprocessedDoer struct {
	calls  atomic.Int32
	onRead func()
}

type closeHook struct {
	io.Reader
	onClose func()
}

func (c closeHook) Close() error {
	c.onClose()
	return nil
}

func (d *unprocessedDoer) Do(req *http.Request) (*http.Response, error) {
	d.calls.Add(1)
	body := `{"Responses":{"clients":[]},"UnprocessedKeys":{"clients":{"Keys":[{"id":{"S":"c-1"}}]}}}`
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{"Content-Type": []string{"application/x-amz-json-1.0"}},
		Body:       closeHook{Reader: strings.NewReader(body), onClose: d.onRead},
		Request:    req,
	}, nil
}

func TestBatchGetByID_BackoffStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	doer := &unprocessedDoer{onRead: cancel}
	client := dynamodb.New(dynamodb.Options{
		Region:       "us-east-1",
		Credentials:  credentials.NewStaticCredentialsProvider("local", "local", ""),
		BaseEndpoint: aws.String("http://dynamodb.local"),
		HTTPClient:   doer,
	})

	_, err := batchGetByID(ctx, client, "clients", []string{"c-1"})
	// the wait between attempts must return the context error itself
	if err != context.Canceled {
		t.Fatalf("expected context.Canceled from the retry wait, got %v", err)
	}
	if got := doer.calls.Load(); got != 1 {
		t.Fatalf("expected a single request before cancellation, got %d", got)
	}
}
