package hxhook

import (
	"context"

	"github.com/pthm/hxhook/lib/encoding"
)

// Encoder is an alias for encoding.Encoder for convenience.
type Encoder = encoding.Encoder

// Encodable is implemented by results that choose their own encoded state.
type Encodable = encoding.Encodable

// Decodable is implemented by results that rebuild themselves from state.
type Decodable = encoding.Decodable

// NewEncoder creates a new encoder with the given key.
func NewEncoder(key []byte) (*Encoder, error) {
	return encoding.NewEncoder(key)
}

// Dehydrate encodes fetched results into a token for the client. Signed
// tokens are readable but tamper-proof; sensitive ones are encrypted.
//
//	results, err := hxhook.GetPrefetchedData(ctx, page, params).Await(ctx)
//	token, err := hxhook.Dehydrate(enc, results, false)
func Dehydrate(enc *Encoder, results any, sensitive bool) (string, error) {
	return enc.Encode(results, sensitive)
}

// Rehydrate decodes a token produced by Dehydrate into v.
func Rehydrate(enc *Encoder, token string, sensitive bool, v any) error {
	return enc.Decode(token, sensitive, v)
}

// FetchAndDehydrate waits for the prefetch data of components and encodes it
// into a token in one step.
func (e *Engine) FetchAndDehydrate(ctx context.Context, enc *Encoder, components any, locals any, sensitive bool) (string, error) {
	results, err := e.GetPrefetchedData(ctx, components, locals).Await(ctx)
	if err != nil {
		return "", err
	}
	return Dehydrate(enc, results, sensitive)
}
