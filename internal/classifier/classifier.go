// Package classifier wraps the offline-trained vectorizer and model used for sentiment inference.
package classifier

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/domain"
	"github.com/AKC07-Dev/English-Text-Sentiment-Analysis-stage-2/internal/storage"
)

// Classifier turns cleaned review text into a sentiment label.
// It is immutable and safe for concurrent use.
type Classifier struct {
	vectorizer Vectorizer
	model      Model
}

// New pairs a vectorizer with a model fitted on the same feature space.
func New(v Vectorizer, m Model) (*Classifier, error) {
	if v.Dimension() != m.Dimension() {
		return nil, fmt.Errorf("vectorizer produces %d features but model expects %d", v.Dimension(), m.Dimension())
	}
	return &Classifier{vectorizer: v, model: m}, nil
}

// Classify vectorizes clean and returns the model's prediction.
func (c *Classifier) Classify(clean string) domain.Label {
	return c.model.Predict(c.vectorizer.Transform(clean))
}

// Dimension returns the size of the shared feature space.
func (c *Classifier) Dimension() int {
	return c.vectorizer.Dimension()
}

// Classes returns the labels the model can emit.
func (c *Classifier) Classes() []domain.Label {
	return c.model.Classes()
}

// Load fetches both artifacts from store concurrently and builds a Classifier.
// Any failure here means the service must not start.
func Load(ctx context.Context, store storage.ObjectStorage, vectorizerKey, modelKey string) (*Classifier, error) {
	var (
		vec   *TfidfVectorizer
		model *LinearModel
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		vec, err = fetch(gctx, store, vectorizerKey, ParseVectorizer)
		return err
	})
	g.Go(func() error {
		var err error
		model, err = fetch(gctx, store, modelKey, ParseModel)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return New(vec, model)
}

func fetch[T any](ctx context.Context, store storage.ObjectStorage, key string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	rc, err := store.Download(ctx, key)
	if err != nil {
		return zero, fmt.Errorf("failed to load artifact %s: %w", store.Describe(key), err)
	}
	defer rc.Close()

	out, err := parse(rc)
	if err != nil {
		return zero, fmt.Errorf("artifact %s: %w", store.Describe(key), err)
	}
	return out, nil
}
