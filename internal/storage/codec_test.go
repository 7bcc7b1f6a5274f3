package storage

import (
	"errors"
	"reflect"
	"testing"
)

func TestModelProfileCodecVersionGuard(t *testing.T) {
	profile := testModelProfile("two-wheel-bot-dqn-great")

	payload, err := EncodeModelProfile(profile)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := DecodeModelProfile(payload)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, profile) {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}

	stale := profile
	stale.SchemaVersion = CurrentSchemaVersion + 1
	payload, err = EncodeModelProfile(stale)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, err := DecodeModelProfile(payload); !errors.Is(err, ErrVersionMismatch) {
		t.Fatalf("expected version mismatch, got=%v", err)
	}

	if _, err := DecodeModelProfile([]byte("{")); err == nil {
		t.Fatal("expected malformed payload to fail")
	}
}
