package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/domain"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/logger"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/metrics"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/textproc"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/translation"
)

// ErrMissingField is returned when a request body lacks a required key.
var ErrMissingField = errors.New("missing required field")

// Classifier maps normalized text to a sentiment label.
type Classifier interface {
	Classify(clean string) domain.Label
}

// ReviewStore is the append-only review persistence used by the service.
type ReviewStore interface {
	Append(ctx context.Context, review *domain.Review) (uint, error)
	ListAll(ctx context.Context) ([]domain.Review, error)
}

// Prediction is the outcome of classifying one review text.
type Prediction struct {
	Label   domain.Label
	Message string
	Tag     string
}

// SaveReviewInput carries a submitted review. ReviewText is stored exactly as given.
type SaveReviewInput struct {
	Name        string
	Email       string
	ProductName string
	Rating      int
	ReviewText  string
}

// ReviewService runs the sentiment pipeline and persists reviews.
type ReviewService struct {
	normalizer *textproc.Normalizer
	classifier Classifier
	translator translation.Gateway
	store      ReviewStore
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

// NewReviewService creates a new review service.
// Parameters:
//   - normalizer: text normalizer applied before every classification.
//   - classifier: loaded sentiment classifier.
//   - translator: translation gateway; nil disables translation.
//   - store: review persistence.
//   - m: metrics collectors; may be nil.
//   - log: logger instance.
//
// Returns:
//   - *ReviewService: initialized service.
func NewReviewService(
	normalizer *textproc.Normalizer,
	classifier Classifier,
	translator translation.Gateway,
	store ReviewStore,
	m *metrics.Metrics,
	log *logger.Logger,
) *ReviewService {
	if translator == nil {
		translator = translation.NoopGateway{}
	}
	if log == nil {
		log = logger.GetDefault()
	}
	return &ReviewService{
		normalizer: normalizer,
		classifier: classifier,
		translator: translator,
		store:      store,
		metrics:    m,
		logger:     log,
	}
}

// Predict classifies raw review text and returns the user-facing message.
func (s *ReviewService) Predict(ctx context.Context, raw interface{}) (*Prediction, error) {
	p, err := s.classify(ctx, textproc.Stringify(raw))
	if err != nil {
		return nil, err
	}
	s.metrics.ObservePrediction("predict", p.Label)
	return p, nil
}

// SaveReview classifies the review text and stores the review with its sentiment tag.
func (s *ReviewService) SaveReview(ctx context.Context, in *SaveReviewInput) (*domain.Review, error) {
	start := time.Now()

	p, err := s.classify(ctx, in.ReviewText)
	if err != nil {
		return nil, err
	}
	s.metrics.ObservePrediction("save-review", p.Label)

	review := &domain.Review{
		Name:        in.Name,
		Email:       in.Email,
		ProductName: in.ProductName,
		Rating:      in.Rating,
		ReviewText:  in.ReviewText,
		Sentiment:   p.Tag,
	}
	id, err := s.store.Append(ctx, review)
	if err != nil {
		logger.With(logger.Fields{logger.FieldSentiment: review.Sentiment}).
			Error(ctx, "Failed to store review: %v", err)
		return nil, fmt.Errorf("save review: %w", err)
	}
	s.metrics.ObserveSaved(review.Sentiment)

	logger.With(logger.Fields{
		logger.FieldReviewID:  id,
		logger.FieldSentiment: review.Sentiment,
	}).WithDuration(time.Since(start).Milliseconds()).Info(ctx, "Review saved")

	return review, nil
}

// ListReviews returns every stored review in insertion order.
func (s *ReviewService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *ReviewService) classify(ctx context.Context, text string) (*Prediction, error) {
	if strings.TrimSpace(text) != "" {
		english, err := translation.EnsureEnglish(ctx, s.translator, text)
		if err != nil {
			s.logger.WithError(err).Warn("Translation failed")
			return nil, err
		}
		text = english
	}

	label := s.classifier.Classify(s.normalizer.Normalize(text))
	logger.With(logger.Fields{logger.FieldLabel: int(label)}).Info(ctx, "Review classified")

	return &Prediction{
		Label:   label,
		Message: label.UserMessage(),
		Tag:     label.StorageTag(),
	}, nil
}
