package service

import (
	"context"
)

type fakeClient struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeClient) Generate(ctx context.Context, prompt string) (string, error) {
	f.calls++
	f.lastPrompt = prompt
	return f.reply, f.err
}

func (f *fakeClient) Close() error { return nil }
