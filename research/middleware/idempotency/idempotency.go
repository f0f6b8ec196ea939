// Package idempotency makes tagged endpoints safe to retry: the first
// request with a given key runs, concurrent duplicates are rejected, and
// completed responses are replayed from cache.
package idempotency

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"time"

	"encore.dev/beta/errs"
	"encore.dev/middleware"
	"encore.dev/rlog"
	"encore.dev/storage/cache"

	"encore.app/research/model"
)

// Header carries the caller-chosen idempotency key.
const Header = "X-Idempotency-Key"

//encore:middleware target=tag:idempotency
func Middleware(req middleware.Request, next middleware.Next) middleware.Response {
	key, err := keyFromRequest(req)
	if err != nil {
		return middleware.Response{Err: err}
	}

	cacheKey := model.IdempotencyKey{Resource: req.Data().Path, Key: key}
	bodyHash := bodyHash(req.Data().Payload)

	entry, getErr := Keyspace.Get(req.Context(), cacheKey)
	if getErr != nil {
		if !errors.Is(getErr, cache.Miss) {
			rlog.Error("idempotency cache check failed", "key", key, "error", getErr)
			return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to check idempotency"}}
		}
		return runAndRecord(req, next, cacheKey, bodyHash)
	}

	if bodyHash != "" && entry.RequestBodyHash != "" && bodyHash != entry.RequestBodyHash {
		return middleware.Response{Err: &errs.Error{
			Code:    errs.InvalidArgument,
			Message: "idempotency key conflict: request body does not match previous request",
		}}
	}

	switch entry.Status {
	case model.IdempotencyProcessing:
		rlog.Info("rejecting concurrent duplicate request", "key", key)
		return middleware.Response{Err: &errs.Error{Code: errs.Aborted, Message: "request is already being processed"}}
	case model.IdempotencyCompleted:
		if resp, ok := replay(req, entry); ok {
			rlog.Info("replaying cached response", "key", key)
			return resp
		}
		// Corrupted cached response; process as a new request.
		return runAndRecord(req, next, cacheKey, bodyHash)
	default:
		rlog.Warn("unknown idempotency entry status, processing as new request", "key", key, "status", entry.Status)
		return runAndRecord(req, next, cacheKey, bodyHash)
	}
}

// runAndRecord marks the key as in flight, runs the endpoint, and either
// caches the successful response or clears the entry so the caller can
// retry a failure with the same key.
func runAndRecord(req middleware.Request, next middleware.Next, cacheKey model.IdempotencyKey, bodyHash string) middleware.Response {
	ctx := req.Context()
	if err := Keyspace.Set(ctx, cacheKey, model.IdempotencyEntry{
		Status:    model.IdempotencyProcessing,
		CreatedAt: time.Now(),
	}); err != nil {
		rlog.Error("failed to mark request as processing", "error", err)
		return middleware.Response{Err: &errs.Error{Code: errs.Internal, Message: "failed to mark request as processing"}}
	}

	resp := next(req)

	if resp.Err != nil {
		if _, delErr := Keyspace.Delete(ctx, cacheKey); delErr != nil {
			rlog.Error("failed to clear idempotency entry after failure", "error", delErr)
		}
		return resp
	}

	entry := model.IdempotencyEntry{
		Status:          model.IdempotencyCompleted,
		RequestBodyHash: bodyHash,
		UpdatedAt:       time.Now(),
	}
	if resp.Payload != nil {
		if payload, err := json.Marshal(resp.Payload); err != nil {
			rlog.Error("failed to marshal response for idempotency cache", "error", err)
		} else {
			entry.Response = payload
		}
	}
	if err := Keyspace.Set(ctx, cacheKey, entry); err != nil {
		rlog.Error("failed to cache completed response", "error", err)
	}
	return resp
}

// replay reconstructs a cached response into the endpoint's response type.
func replay(req middleware.Request, entry model.IdempotencyEntry) (middleware.Response, bool) {
	if len(entry.Response) == 0 {
		return middleware.Response{}, false
	}
	responseType := req.Data().API.ResponseType
	if responseType == nil {
		return middleware.Response{}, false
	}
	payload := reflect.New(responseType.Elem()).Interface()
	if err := json.Unmarshal(entry.Response, payload); err != nil {
		rlog.Error("failed to unmarshal cached response", "error", err)
		return middleware.Response{}, false
	}
	return middleware.Response{Payload: payload}, true
}

func keyFromRequest(req middleware.Request) (string, *errs.Error) {
	var key string
	if headers := req.Data().Headers; headers != nil {
		key = strings.TrimSpace(headers.Get(Header))
	}
	if key == "" {
		return "", &errs.Error{Code: errs.InvalidArgument, Message: Header + " header is required"}
	}
	return key, nil
}

// bodyHash is the full SHA-256 of the request payload, used to detect a
// key reused with a different body. A truncated encoding would collide for
// distinct bodies sharing a prefix; the full digest does not.
func bodyHash(payload any) string {
	if payload == nil {
		return ""
	}
	body, err := json.Marshal(payload)
	if err != nil {
		rlog.Error("failed to marshal request body for hashing", "error", err)
		return ""
	}
	sum := sha256.Sum256(body)
	return hex.EncodeToString(sum[:])
}
