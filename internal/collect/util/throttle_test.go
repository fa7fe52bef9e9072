package util

import (
	"context"
	"testing"
	"time"
)

func TestWaitWithinBurst(t *testing.T) {
	th := NewThrottle(100, 2)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	for i := 0; i < 2; i++ {
		if err := th.Wait(ctx, "https://example.com/api"); err != nil {
			t.Fatalf("Wait: %v", err)
		}
	}
}

func TestWaitSeparateHosts(t *testing.T) {
	th := NewThrottle(1, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// one token per host; two different hosts must not contend
	if err := th.Wait(ctx, "https://a.example.com/x"); err != nil {
		t.Fatalf("host a: %v", err)
	}
	if err := th.Wait(ctx, "https://b.example.com/x"); err != nil {
		t.Fatalf("host b: %v", err)
	}
}

func TestWaitPortSharesBucket(t *testing.T) {
	th := NewThrottle(1000, 1)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// ports don't split the bucket; both hit the example.com limiter
	if err := th.Wait(ctx, "https://example.com:8443/a"); err != nil {
		t.Fatalf("with port: %v", err)
	}
	if err := th.Wait(ctx, "https://example.com/b"); err != nil {
		t.Fatalf("without port: %v", err)
	}
	if len(th.buckets) != 1 {
		t.Errorf("got %d buckets, want 1", len(th.buckets))
	}
}

func TestWaitUnparseable(t *testing.T) {
	th := NewThrottle(10, 1)
	if err := th.Wait(context.Background(), "::not a url::"); err != nil {
		t.Fatalf("Wait catch-all bucket: %v", err)
	}
}
