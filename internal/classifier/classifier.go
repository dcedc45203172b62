// Package classifier predicts a category label for an uploaded file from its
// filename.
//
// Two backends are provided: Model, a linear text classifier loaded from a
// pre-trained artifact on disk, and LLMClassifier, which asks an
// OpenAI-compatible chat endpoint. Both implement service.Classifier.
// Neither sanitizes its input; pass the already sanitized name.
package classifier
