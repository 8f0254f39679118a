//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"medical-panel/domain/specialist"
)

// Agent consumes the shared case report text and produces one finding.
// Implementations only read text and must be safe to run concurrently with other agents.
type Agent interface {
	Name() string
	Analyze(ctx context.Context, text string) (specialist.Finding, error)
}

// KeywordExtractor is the remote NLU boundary: text in, ranked keywords out.
type KeywordExtractor interface {
	Extract(ctx context.Context, text string) ([]specialist.Term, error)
}
