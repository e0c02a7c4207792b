package model

import (
	"context"

	"gonum.org/v1/gonum/mat"
)

// the common interface of topic model estimators
type Model interface {
	// fit the model on a document-term count matrix
	Fit(ctx context.Context, X mat.Matrix, seeds map[int]int, seedConfidence float64) error
	// fit the model and return the document-topic distribution
	FitTransform(ctx context.Context, X mat.Matrix, seeds map[int]int, seedConfidence float64) (*mat.Dense, error)
	// infer topic distributions of new documents
	Transform(X mat.Matrix) (*mat.Dense, error)
	// posterior document-topic distribution
	DocTopic() *mat.Dense
	// posterior topic-word distribution
	TopicWord() *mat.Dense
	// joint log-likelihood after the last sweep
	LogLikelihood() float64
	// serialize posterior document topic distribution
	SaveTheta(fn string) error
	// serialize posterior topic word distribution
	SavePhi(fn string) error
	// serialize topic word count table
	SaveWordTopic(fn string) error
	// deserialize topic word count table
	LoadWordTopic(fn string) error
}

var _ Model = (*GuidedLDA)(nil)
