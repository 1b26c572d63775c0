package redisstore

import (
	"context"
	"sync"
)

type fakeKV struct {
	mu    sync.Mutex
	data  map[string]string
	lists map[string][]string
	err   error
}

func newFakeKV() *fakeKV {
	return &fakeKV{data: map[string]string{}, lists: map[string][]string{}}
}

func (f *fakeKV) Append(_ context.Context, listKey, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.data[key] = value
	f.lists[listKey] = append(f.lists[listKey], key)
	return nil
}

func (f *fakeKV) Members(_ context.Context, listKey string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	var out []string
	for _, k := range f.lists[listKey] {
		if v, ok := f.data[k]; ok {
			out = append(out, v)
		}
	}
	return out, nil
}
