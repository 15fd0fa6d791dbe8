package engine

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"brandguard-hq/brandguard/pkg/brand"
	"brandguard-hq/brandguard/pkg/cache"
	"brandguard-hq/brandguard/pkg/evaluation"
	"brandguard-hq/brandguard/pkg/evaluation/terminology"
	"brandguard-hq/brandguard/pkg/evaluation/tone"
	"brandguard-hq/brandguard/pkg/evaluation/voice"
	"brandguard-hq/brandguard/pkg/history"
	"brandguard-hq/brandguard/pkg/plugin"
	"brandguard-hq/brandguard/pkg/telemetry/logging"
)

// Request describes one evaluation. Text is required; everything else
// is optional. BrandName is required when IncludeCompliance is set.
type Request struct {
	// Text is the content to evaluate.
	Text string

	// Context is the usage-context label ("social-media", "legal", ...).
	Context string

	// BrandName selects the brand guidelines for compliance analysis.
	BrandName string

	// Metadata carries optional content attributes into enrichment.
	Metadata *evaluation.Metadata

	// IncludeSafety runs the safety categorizer.
	IncludeSafety bool

	// IncludeCompliance runs the brand compliance analyzers.
	IncludeCompliance bool

	// Weights overrides the configured combined weight pair. Nil uses
	// the configured pair; a zero configured pair means no combined
	// score is produced.
	Weights *evaluation.CombinedWeights
}

// EvaluateSafety categorizes content risk against the configured
// tolerances. Results are cached under the safety TTL.
func (e *Engine) EvaluateSafety(ctx context.Context, text, contextLabel string) (*evaluation.SafetyEvaluation, error) {
	cfg := e.config.Snapshot()

	content, err := e.prepare(text, contextLabel, nil, cfg.Content.MaxLength)
	if err != nil {
		return nil, err
	}

	key := cache.Fingerprint(cache.KindSafety, content.Text(), content.Context(), "")
	if cached, ok := e.cacheGet(key, cache.KindSafety); ok {
		if result, ok := cached.(*evaluation.SafetyEvaluation); ok {
			return result, nil
		}
	}

	start := time.Now()
	result, err := e.categorize.Evaluate(content, &cfg.Safety)
	if err != nil {
		e.recordMetrics(cache.KindSafety, "error", time.Since(start))
		return nil, err
	}

	outcome := "fail"
	if result.IsSafe() {
		outcome = "pass"
	}
	e.recordMetrics(cache.KindSafety, outcome, time.Since(start))
	if e.metrics != nil {
		e.metrics.RecordSafetyRisk(result.OverallRisk.String())
	}

	e.cacheSet(key, result, cfg.Cache.SafetyTTL)
	e.record(ctx, &history.Record{
		Kind:        cache.KindSafety,
		Fingerprint: key,
		Context:     content.Context(),
		Risk:        result.OverallRisk.String(),
		Passed:      result.IsSafe(),
		IssueCount:  countExceeded(result),
		Summary:     result.Summary,
	})

	e.logger.Debug("safety evaluation complete",
		"risk", result.OverallRisk.String(),
		"safe", result.IsSafe(),
		"content", logging.Snippet(content.Text()),
	)

	return result, nil
}

// EvaluateCompliance analyzes content against a brand's tone, voice,
// and terminology guidelines. Results are cached under the compliance
// TTL, keyed by brand identity as well as content.
func (e *Engine) EvaluateCompliance(ctx context.Context, text, contextLabel, brandName string) (*evaluation.ComplianceEvaluation, error) {
	b, ok := e.brands.Get(brandName)
	if !ok {
		return nil, &evaluation.ValidationError{Field: "brand", Message: fmt.Sprintf("unknown brand %q", brandName)}
	}

	cfg := e.config.Snapshot()

	content, err := e.prepare(text, contextLabel, nil, cfg.Content.MaxLength)
	if err != nil {
		return nil, err
	}

	key := cache.Fingerprint(cache.KindCompliance, content.Text(), content.Context(), b.Name)
	if cached, ok := e.cacheGet(key, cache.KindCompliance); ok {
		if result, ok := cached.(*evaluation.ComplianceEvaluation); ok {
			return result, nil
		}
	}

	start := time.Now()
	result, err := e.runCompliance(content, b)
	if err != nil {
		e.recordMetrics(cache.KindCompliance, "error", time.Since(start))
		return nil, err
	}

	outcome := "fail"
	if result.IsCompliant() {
		outcome = "pass"
	}
	e.recordMetrics(cache.KindCompliance, outcome, time.Since(start))
	if e.metrics != nil {
		e.metrics.RecordComplianceScore(result.Score)
	}

	e.cacheSet(key, result, cfg.Cache.ComplianceTTL)
	score := result.Score
	e.record(ctx, &history.Record{
		Kind:        cache.KindCompliance,
		Fingerprint: key,
		BrandName:   b.Name,
		Context:     content.Context(),
		Score:       &score,
		Passed:      result.IsCompliant(),
		IssueCount:  len(result.Issues),
		Summary:     result.Summary,
	})

	e.logger.Debug("compliance evaluation complete",
		"brand", b.Name,
		"score", result.Score,
		"compliant", result.IsCompliant(),
		"content", logging.Snippet(content.Text()),
	)

	return result, nil
}

// Evaluate runs the requested evaluations concurrently and merges them
// into a combined result.
func (e *Engine) Evaluate(ctx context.Context, req Request) (*evaluation.CombinedResult, error) {
	if !req.IncludeSafety && !req.IncludeCompliance {
		return nil, &evaluation.ValidationError{Field: "request", Message: "at least one evaluation must be requested"}
	}
	if req.IncludeCompliance && req.BrandName == "" {
		return nil, &evaluation.ValidationError{Field: "brand", Message: "brand name is required for compliance evaluation"}
	}

	var (
		wg            sync.WaitGroup
		safetyEval    *evaluation.SafetyEvaluation
		safetyErr     error
		complianceEv  *evaluation.ComplianceEvaluation
		complianceErr error
	)

	if req.IncludeSafety {
		wg.Add(1)
		go func() {
			defer wg.Done()
			safetyEval, safetyErr = e.EvaluateSafety(ctx, req.Text, req.Context)
		}()
	}
	if req.IncludeCompliance {
		wg.Add(1)
		go func() {
			defer wg.Done()
			complianceEv, complianceErr = e.EvaluateCompliance(ctx, req.Text, req.Context, req.BrandName)
		}()
	}
	wg.Wait()

	if safetyErr != nil {
		return nil, safetyErr
	}
	if complianceErr != nil {
		return nil, complianceErr
	}

	weights := req.Weights
	if weights == nil {
		cfg := e.config.Snapshot()
		if cfg.Combined.SafetyWeight > 0 || cfg.Combined.BrandWeight > 0 {
			weights = &evaluation.CombinedWeights{
				Safety: cfg.Combined.SafetyWeight,
				Brand:  cfg.Combined.BrandWeight,
			}
		}
	}

	result := combine(safetyEval, complianceEv, weights)

	e.record(ctx, &history.Record{
		Kind:        cache.KindCombined,
		Fingerprint: cache.Fingerprint(cache.KindCombined, req.Text, req.Context, req.BrandName),
		BrandName:   req.BrandName,
		Context:     req.Context,
		Score:       result.CombinedScore,
		Passed:      result.Compliant,
		IssueCount:  combinedIssueCount(result),
	})

	return result, nil
}

// combine merges the sub-evaluations. With a weight pair the combined
// score is the weighted average of the safety-derived score and the
// compliance score, and the decision gates on the compliance threshold.
// Without weights, or when no present sub-evaluation carries a positive
// weight, there is no combined score; every present sub-evaluation must
// pass its own threshold instead.
func combine(safetyEval *evaluation.SafetyEvaluation, complianceEval *evaluation.ComplianceEvaluation, weights *evaluation.CombinedWeights) *evaluation.CombinedResult {
	result := &evaluation.CombinedResult{
		Safety:     safetyEval,
		Compliance: complianceEval,
		Weights:    weights,
		Timestamp:  time.Now().UTC(),
	}

	var weightedSum, weightTotal float64
	if weights != nil {
		if safetyEval != nil && weights.Safety > 0 {
			weightedSum += weights.Safety * float64(safetyEval.OverallRisk.Score())
			weightTotal += weights.Safety
		}
		if complianceEval != nil && weights.Brand > 0 {
			weightedSum += weights.Brand * float64(complianceEval.Score)
			weightTotal += weights.Brand
		}
	}

	if weightTotal > 0 {
		score := int(math.Round(weightedSum / weightTotal))
		if score < 0 {
			score = 0
		}
		if score > 100 {
			score = 100
		}
		result.CombinedScore = &score
		result.Compliant = score >= evaluation.ComplianceThreshold
		return result
	}

	compliant := safetyEval != nil || complianceEval != nil
	if safetyEval != nil && !safetyEval.IsSafe() {
		compliant = false
	}
	if complianceEval != nil && !complianceEval.IsCompliant() {
		compliant = false
	}
	result.Compliant = compliant
	return result
}

// RunEvaluatorPlugins runs every registered evaluation plugin against
// the content. Failures are isolated per plugin.
func (e *Engine) RunEvaluatorPlugins(ctx context.Context, text, contextLabel string) ([]plugin.EvaluatorOutput, error) {
	cfg := e.config.Snapshot()

	content, err := e.prepare(text, contextLabel, nil, cfg.Content.MaxLength)
	if err != nil {
		return nil, err
	}

	outputs := e.pipeline.RunEvaluators(content)
	if e.metrics != nil {
		for _, out := range outputs {
			if out.Err != nil {
				e.metrics.RecordPluginFailure(out.PluginID)
			}
		}
	}
	return outputs, nil
}

// Format renders a result using the formatter registered for the
// requested format name.
func (e *Engine) Format(result interface{}, format string) (string, error) {
	return e.pipeline.Format(result, format)
}

// prepare runs the enrichment chain and constructs validated Content.
// Enrichment happens before validation limits are applied to the final
// text, so an enricher cannot push content past the ceiling.
func (e *Engine) prepare(text, contextLabel string, meta *evaluation.Metadata, maxLength int) (*evaluation.Content, error) {
	metadata := metadataMap(meta)
	enriched, _ := e.pipeline.Enrich(text, metadata)
	return evaluation.NewContentWithLimit(enriched, contextLabel, meta, maxLength)
}

// cacheGet reads the result cache, treating a disabled cache as a
// miss.
func (e *Engine) cacheGet(key, kind string) (interface{}, bool) {
	if e.cache == nil {
		return nil, false
	}
	value, ok := e.cache.Get(key)
	if e.metrics != nil {
		if ok {
			e.metrics.RecordCacheHit(kind)
		} else {
			e.metrics.RecordCacheMiss(kind)
		}
	}
	return value, ok
}

// cacheSet writes the result cache when enabled.
func (e *Engine) cacheSet(key string, value interface{}, ttl time.Duration) {
	if e.cache == nil {
		return
	}
	e.cache.Set(key, value, ttl)
	if e.metrics != nil {
		e.metrics.UpdateCacheSize(e.cache.Size())
	}
}

// record appends a history record when history is enabled. Recording
// failures are logged and never fail the evaluation.
func (e *Engine) record(ctx context.Context, rec *history.Record) {
	if e.history == nil {
		return
	}
	if err := e.history.Append(ctx, rec); err != nil {
		e.logger.Error("recording evaluation history failed", "error", err)
	}
}

// recordMetrics records the evaluation counter and latency histogram.
func (e *Engine) recordMetrics(kind, outcome string, duration time.Duration) {
	if e.metrics == nil {
		return
	}
	e.metrics.RecordEvaluation(kind, outcome, duration)
}

// runCompliance runs the three analyzers and aggregates their results.
// Analyzer construction is cheap; per-call analyzers keep brand updates
// visible immediately after a registry reload.
func (e *Engine) runCompliance(content *evaluation.Content, b *brand.Brand) (*evaluation.ComplianceEvaluation, error) {
	toneResult, err := tone.NewAnalyzer(b, e.matcher).Analyze(content)
	if err != nil {
		return nil, fmt.Errorf("tone analysis: %w", err)
	}

	voiceResult, err := voice.NewAnalyzer(b).Analyze(content)
	if err != nil {
		return nil, fmt.Errorf("voice analysis: %w", err)
	}

	termResult, err := terminology.NewAnalyzer(b, e.matcher).Analyze(content)
	if err != nil {
		return nil, fmt.Errorf("terminology analysis: %w", err)
	}

	return e.aggregator.Aggregate(content, b.Name, toneResult, voiceResult, termResult)
}

// metadataMap converts content metadata into the map form the
// enrichment chain passes along.
func metadataMap(meta *evaluation.Metadata) map[string]interface{} {
	m := make(map[string]interface{})
	if meta == nil {
		return m
	}
	if meta.Source != "" {
		m["source"] = meta.Source
	}
	if meta.ContentType != "" {
		m["content_type"] = meta.ContentType
	}
	if meta.Language != "" {
		m["language"] = meta.Language
	}
	if len(meta.Tags) != 0 {
		m["tags"] = append([]string(nil), meta.Tags...)
	}
	return m
}

// countExceeded counts categories whose risk exceeded tolerance.
func countExceeded(eval *evaluation.SafetyEvaluation) int {
	count := 0
	for _, cat := range eval.Categories {
		if cat.Exceeded {
			count++
		}
	}
	return count
}

// combinedIssueCount sums issues across the present sub-evaluations:
// compliance issues plus safety categories whose risk exceeded
// tolerance.
func combinedIssueCount(result *evaluation.CombinedResult) int {
	count := 0
	if result.Safety != nil {
		count += countExceeded(result.Safety)
	}
	if result.Compliance != nil {
		count += len(result.Compliance.Issues)
	}
	return count
}
