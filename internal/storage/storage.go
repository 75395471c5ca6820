// Package storage archives exported career plans in object storage.
package storage

import (
	"context"
	"io"
	"time"
)

type Uploader interface {
	Upload(ctx context.Context, objectName string, contentType string, r io.Reader) (storedPath string, err error)
}

type Signer interface {
	SignedGetURL(ctx context.Context, objectName string, ttl time.Duration) (string, error)
}

// Archive stores plans privately and hands out temporary download links.
type Archive interface {
	Uploader
	Signer
}

// PlanObjectName is where a plan for one session is stored.
func PlanObjectName(sessionID, fileName string) string {
	return "plans/" + sessionID + "/" + fileName
}
