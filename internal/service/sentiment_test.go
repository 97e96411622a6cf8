package service_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"newssaar/backend/internal/model"
	"newssaar/backend/internal/service"
	servicemock "newssaar/backend/internal/service/mock"
)

func TestClassify_Thresholds(t *testing.T) {
	cases := []struct {
		score float64
		want  model.Sentiment
	}{
		{1, model.SentimentPositive},
		{0.1, model.SentimentPositive},
		{0.0999, model.SentimentNeutral},
		{0, model.SentimentNeutral},
		{-0.0999, model.SentimentNeutral},
		{-0.1, model.SentimentNegative},
		{-1, model.SentimentNegative},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, service.Classify(tc.score), "score %v", tc.score)
	}
}

func TestSentimentService_UsesScorerAndClamps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	scorer := servicemock.NewMockSentimentScorer(ctrl)
	scorer.EXPECT().Compound("great").Return(1.7)
	scorer.EXPECT().Compound("awful").Return(-0.4)

	svc := service.NewSentimentService(scorer)

	label, score := svc.Classify("great")
	require.Equal(t, model.SentimentPositive, label)
	require.Equal(t, 1.0, score)

	label, score = svc.Classify("awful")
	require.Equal(t, model.SentimentNegative, label)
	require.InDelta(t, -0.4, score, 1e-9)
}

func TestSentimentService_EmptyTextIsNeutral(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc := service.NewSentimentService(servicemock.NewMockSentimentScorer(ctrl))
	label, score := svc.Classify("  ")
	require.Equal(t, model.SentimentNeutral, label)
	require.Equal(t, 0.0, score)
}

func TestVaderScorer(t *testing.T) {
	svc := service.NewSentimentService(service.NewVaderScorer())

	label, score := svc.Classify("This is a wonderful, excellent day. I love it!")
	require.Equal(t, model.SentimentPositive, label)
	require.Greater(t, score, 0.5)

	label, score = svc.Classify("A terrible, horrible disaster killed many and left people devastated.")
	require.Equal(t, model.SentimentNegative, label)
	require.Less(t, score, -0.5)
}
