package domain

// Label is the discrete class emitted by the sentiment model.
// The polarity of each code is a convention shared with the training pipeline;
// nothing checks it against the model itself.
type Label int

const (
	LabelNegative Label = 0
	LabelPositive Label = 1
	LabelNeutral  Label = 2
)

// Storage tags persisted in reviews.sentiment.
const (
	SentimentBad     = "bad"
	SentimentGood    = "good"
	SentimentNeutral = "neutral"
)

const (
	messageNegative = "Sorry for that"
	messagePositive = "Thanks for such sweet review"
	messageDefault  = "Thank you"
)

// UserMessage returns the reply shown to the reviewer. Unknown labels get the neutral reply.
func (l Label) UserMessage() string {
	switch l {
	case LabelNegative:
		return messageNegative
	case LabelPositive:
		return messagePositive
	default:
		return messageDefault
	}
}

// StorageTag returns the sentiment tag stored with a review. Unknown labels are stored as neutral.
func (l Label) StorageTag() string {
	switch l {
	case LabelNegative:
		return SentimentBad
	case LabelPositive:
		return SentimentGood
	default:
		return SentimentNeutral
	}
}
