package chunker

import "github.com/splitkit/splitkit/pkg/types"

// Semantic split thresholds. These are empirically tuned parameters, not
// fundamental constants; adjust with care since they shape every boundary
// decision.
const (
	// minFillRatio: never split a chunk still below this share of ChunkSize
	minFillRatio = 0.3
	// lowSimilarity: keyword overlap below this counts as a topic change
	lowSimilarity = 0.2
	// Fill levels that arm each split trigger
	lowSimilarityFill = 0.6
	transitionFill    = 0.4
	contextShiftFill  = 0.5
	// contextShiftRatio: following-sentence similarity must exceed the
	// current similarity by this factor to signal the next topic starting
	contextShiftRatio = 1.5
)

// semanticSegmenter accumulates sentences like the sentence strategy but
// decides each flush with a lexical topic heuristic: keyword-set overlap
// between the running chunk and the incoming sentence, overlap between the
// incoming and following sentences, and leading discourse markers. It is a
// heuristic over surface lexicon, not a model-backed topic analysis.
type semanticSegmenter struct{}

func (s *semanticSegmenter) Name() types.Strategy { return types.StrategySemantic }

func (s *semanticSegmenter) Segment(text string, cfg types.ChunkConfig) []types.TextChunk {
	sentences := splitSentences(text)

	var chunks []types.TextChunk
	offset := 0
	flush := func(content string) {
		end := offset + charLen(content)
		chunks = append(chunks, types.NewTextChunk(types.StrategySemantic, len(chunks)+1, content, offset, end))
		offset = end + sentenceSepWidth
	}

	current := ""
	for i, sentence := range sentences {
		if current == "" {
			current = sentence
			continue
		}
		total := charLen(current) + sentenceSepWidth + charLen(sentence)
		following := ""
		if i+1 < len(sentences) {
			following = sentences[i+1]
		}
		if shouldSplit(current, sentence, total, cfg.ChunkSize, following) {
			flush(current)
			current = sentence
		} else {
			current += " " + sentence
		}
	}
	if current != "" {
		flush(current)
	}
	return chunks
}

// shouldSplit decides whether next starts a new chunk instead of joining
// current. totalLen is the combined length if next were appended.
func shouldSplit(current, next string, totalLen, maxSize int, following string) bool {
	if totalLen > maxSize {
		return true
	}
	// Avoid fragment-sized chunks regardless of topic signals
	if float64(charLen(current)) < minFillRatio*float64(maxSize) {
		return false
	}

	currentKeywords := extractKeywords(current)
	nextKeywords := extractKeywords(next)
	similarity := jaccard(currentKeywords, nextKeywords)

	contextualSimilarity := 0.0
	if following != "" {
		contextualSimilarity = jaccard(nextKeywords, extractKeywords(following))
	}

	fill := float64(totalLen) / float64(maxSize)
	switch {
	case similarity < lowSimilarity && fill > lowSimilarityFill:
		return true
	case hasTopicTransition(next) && fill > transitionFill:
		return true
	case contextualSimilarity > contextShiftRatio*similarity && fill > contextShiftFill:
		return true
	}
	return false
}
