package agents

import (
	"context"
	stderrors "errors"
	"fmt"
	"log/slog"
	"medical-panel/domain/specialist"
	"medical-panel/errors"
	"medical-panel/mocks"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestWatsonAgent_Analyze(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockKeywordExtractor(ctrl)
	agent := NewWatsonAgent(extractor, logs.GetLoggerFromLevel(slog.LevelDebug))

	keywords := []specialist.Term{
		{Text: "chest pain", Score: 0.97},
		{Text: "panic attacks", Score: 0.81},
	}
	extractor.EXPECT().Extract(ctx, complaint).Return(keywords, nil).Times(1)

	finding, err := agent.Analyze(ctx, complaint)

	req.NoError(err)
	req.Equal(specialist.Finding{
		Agent: WatsonName,
		Kind:  specialist.GeneralExtractionKind,
		Terms: keywords,
	}, finding)
}

func TestWatsonAgent_ServiceError(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockKeywordExtractor(ctrl)
	agent := NewWatsonAgent(extractor, logs.GetLoggerFromLevel(slog.LevelDebug))

	// Given an extractor failing with an already classified error
	classified := fmt.Errorf("%w: %w", errors.ErrService, errors.ErrEmptyText)
	extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(nil, classified)
	_, err := agent.Analyze(ctx, "")
	req.True(stderrors.Is(err, errors.ErrService))
	req.True(stderrors.Is(err, errors.ErrEmptyText))
	req.Equal(classified, err)

	// Given an extractor failing with a raw error
	cause := stderrors.New("connection reset by peer")
	extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return(nil, cause)
	_, err = agent.Analyze(ctx, complaint)
	req.True(stderrors.Is(err, errors.ErrService))
	req.True(stderrors.Is(err, cause))
}

func TestTeamAgent(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	extractor := mocks.NewMockKeywordExtractor(ctrl)
	extractor.EXPECT().Extract(gomock.Any(), gomock.Any()).Return([]specialist.Term{{Text: "x", Score: 1}}, nil)

	finding, err := NewTeamAgent(extractor, logs.GetLoggerFromLevel(slog.LevelDebug)).
		Analyze(context.Background(), "Cardiologist Summary:\n- x")

	req.NoError(err)
	req.Equal(TeamName, finding.Agent)
	req.Equal(specialist.ConsensusKind, finding.Kind)
}
