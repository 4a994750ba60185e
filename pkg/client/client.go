// Package client implements the editing-side core of swift-resume: the
// resume store, the editor session, the remote persistence client and the
// local fallback store. The API service under cmd/api is the usual remote
// end, but everything here depends only on the narrow collaborator
// contracts below.
package client

import (
	"context"
	"errors"

	"github.com/junaifcp/swift-resume/pkg/resume"
)

// ErrNotFound signals that a resume id is absent from the store. Callers
// treat it as a routing signal (redirect to the list), never as a fault.
var ErrNotFound = errors.New("resume not found")

// Auth is the read-only authentication collaborator. The core only reacts
// to the authenticated flag and uses Token as the bearer credential for
// remote calls; it never inspects identity details.
type Auth interface {
	IsAuthenticated() bool
	IsLoading() bool
	Token(ctx context.Context) (string, error)
	SignOut(ctx context.Context) error
}

// Remote is the persistence collaborator: a networked CRUD service of
// record for resumes, keyed by the remote identifier it assigns on create.
type Remote interface {
	List(ctx context.Context) ([]resume.Resume, error)
	Get(ctx context.Context, remoteID uint) (resume.Resume, error)
	Create(ctx context.Context, r resume.Resume) (resume.Resume, error)
	Update(ctx context.Context, r resume.Resume) (resume.Resume, error)
	Delete(ctx context.Context, remoteID uint) error
	Duplicate(ctx context.Context, remoteID uint) (resume.Resume, error)
}

// Fallback is the process-durable slot holding the serialized resume list
// for unauthenticated use. The format is opaque to everything else.
type Fallback interface {
	Load() ([]resume.Resume, error)
	Save(resumes []resume.Resume) error
}

// Exporter turns the rendered region of a resume into a PDF file. Export is
// gated behind the completeness check before this is ever invoked.
type Exporter interface {
	ExportRegionToPDF(ctx context.Context, regionID, fileName string) error
}
