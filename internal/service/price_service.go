package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"houseprice/internal/dataset"
	"houseprice/internal/domain"
	"houseprice/internal/features"
	"houseprice/internal/importance"
)

// Deps are the components the service is built from. Model and Dataset may be nil when their
// load failed; the matching error is then kept and reported on use.
type Deps struct {
	Assembler  *features.Assembler
	Model      domain.Regressor
	ModelErr   error
	Dataset    *dataset.Dataset
	DatasetErr error
	Importance importance.Source
	Logger     *slog.Logger
}

// Options tune the overview and importance views.
type Options struct {
	TargetColumn  string
	HeadRows      int
	HistogramBins int
	TopN          int
}

// Overview is everything the data overview page shows.
type Overview struct {
	Columns   []string
	Head      [][]string
	Summary   []dataset.Summary
	DTypes    []dataset.ColumnType
	Histogram *dataset.Histogram
	Rows      int
}

// PriceService turns form inputs into price predictions and serves the auxiliary views.
type PriceService struct {
	assembler  *features.Assembler
	model      domain.Regressor
	modelErr   error
	data       *dataset.Dataset
	dataErr    error
	importance importance.Source
	opts       Options
	logger     *slog.Logger
}

func NewPriceService(deps Deps, opts Options) *PriceService {
	if deps.Assembler == nil {
		deps.Assembler = features.NewAssembler(nil)
	}
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if opts.TargetColumn == "" {
		opts.TargetColumn = "SalePrice"
	}
	if opts.HeadRows <= 0 {
		opts.HeadRows = 5
	}
	if opts.HistogramBins <= 0 {
		opts.HistogramBins = 30
	}
	if opts.TopN <= 0 {
		opts.TopN = 10
	}
	if deps.Model == nil && deps.ModelErr == nil {
		deps.ModelErr = domain.ErrModelUnavailable
	}
	if deps.Dataset == nil && deps.DatasetErr == nil {
		deps.DatasetErr = domain.ErrDatasetUnavailable
	}
	return &PriceService{
		assembler:  deps.Assembler,
		model:      deps.Model,
		modelErr:   deps.ModelErr,
		data:       deps.Dataset,
		dataErr:    deps.DatasetErr,
		importance: deps.Importance,
		opts:       opts,
		logger:     deps.Logger,
	}
}

// CurrentYear is the year ages are computed against.
func (s *PriceService) CurrentYear() int { return s.assembler.CurrentYear() }

// Fields returns the form layout for the current year.
func (s *PriceService) Fields() []features.Field { return features.Fields(s.CurrentYear()) }

// Assemble builds the feature vector for the inputs without calling the model.
func (s *PriceService) Assemble(in features.RawInputs) domain.FeatureVector {
	return s.assembler.Assemble(in)
}

// ModelErr returns the start-up model error, or nil when a model is loaded.
func (s *PriceService) ModelErr() error {
	if s.model != nil {
		return nil
	}
	return s.modelErr
}

// DatasetErr returns the start-up dataset error, or nil when the dataset is loaded.
func (s *PriceService) DatasetErr() error {
	if s.data != nil {
		return nil
	}
	return s.dataErr
}

// Predict validates the inputs, assembles the vector and runs one prediction.
func (s *PriceService) Predict(ctx context.Context, in features.RawInputs) (res domain.PredictionResult, err error) {
	if s.model == nil {
		if errors.Is(s.modelErr, domain.ErrModelUnavailable) {
			return res, s.modelErr
		}
		return res, fmt.Errorf("%w: %w", domain.ErrModelUnavailable, s.modelErr)
	}
	if err := features.Validate(in, s.CurrentYear()); err != nil {
		return res, err
	}
	vec := s.assembler.Assemble(in)
	name := s.model.Name()

	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("model panicked", "model", name, "panic", r)
			err = &domain.PredictionError{Model: name, Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	out, err := s.model.Predict(ctx, [][]float64{vec.Row()})
	if err != nil {
		s.logger.Warn("prediction failed", "model", name, "error", err)
		return res, &domain.PredictionError{Model: name, Err: err}
	}
	if len(out) == 0 {
		return res, &domain.PredictionError{Model: name, Err: errors.New("model returned no output")}
	}
	price := out[0]
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return res, &domain.PredictionError{Model: name, Err: fmt.Errorf("non-finite prediction %v", price)}
	}
	s.logger.Info("prediction", "model", name, "price", price)
	return domain.PredictionResult{Price: price, Vector: vec, Model: name}, nil
}

// Importance returns the full ranking of the configured importance source.
func (s *PriceService) Importance() (importance.Ranking, error) {
	if s.importance == nil {
		return importance.Ranking{}, importance.ErrNotReported
	}
	return s.importance.Ranking()
}

// Impact returns the top features shown next to a prediction.
func (s *PriceService) Impact() (importance.Ranking, error) {
	r, err := s.Importance()
	if err != nil {
		return importance.Ranking{}, err
	}
	return r.Top(s.opts.TopN), nil
}

// Overview gathers the dataset views. A histogram failure is logged and leaves Histogram nil.
func (s *PriceService) Overview() (*Overview, error) {
	if s.data == nil {
		return nil, s.dataErr
	}
	ov := &Overview{
		Columns: s.data.Columns(),
		Head:    s.data.Head(s.opts.HeadRows),
		Summary: s.data.Describe(),
		DTypes:  s.data.DTypes(),
		Rows:    s.data.Len(),
	}
	h, err := s.data.Histogram(s.opts.TargetColumn, s.opts.HistogramBins)
	if err != nil {
		s.logger.Warn("histogram unavailable", "column", s.opts.TargetColumn, "error", err)
	} else {
		ov.Histogram = h
	}
	return ov, nil
}
