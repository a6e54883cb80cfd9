// SPDX-License-Identifier: MIT
// Package evaluator: leave-one-block-out experiments.
//
// Every fold fits a fresh Clone of every model, so folds share no state and
// run on the worker pool. Results are stored by (fold, model) index.
//
// Timing: the per-trial test time charged to the ITR is wall-clock time of
// Predict. Folds running concurrently compete for the CPU with each other and
// with the models' own trial pools, so with more than one job the compute
// term is an upper bound. WithJobs(1) runs folds one after another and gives
// the undisturbed measurement.

package evaluator

import (
	"fmt"
	"time"

	"github.com/katalvlaran/ssvepcca/cca"
	"github.com/katalvlaran/ssvepcca/internal/parallel"
	"github.com/katalvlaran/ssvepcca/signal"
	"gonum.org/v1/gonum/mat"
)

// Task is one offline experiment: a block-structured dataset, its stimulus
// frequencies and references, and the data window of one trial in seconds.
type Task struct {
	Freqs  []float64
	Refs   []*mat.Dense
	Data   signal.Dataset
	Window float64
}

// Result is the outcome of one model on one held-out block.
type Result struct {
	Model     string
	Index     int // position of the model in the slice given to Run
	Fold      int // held-out block
	Accuracy  float64
	ITR       float64 // compute term from TestTime, see the package timing note
	TrainTime time.Duration
	TestTime  time.Duration
	Confusion *mat.Dense
	Truth     []int
	Predicted []int
}

// Stat is a mean with its spread.
type Stat struct {
	Mean float64
	Std  float64
	CI95 float64 // 0 with fewer than two folds
}

// Summary folds the Results of one model.
//
// Label is the model ID, suffixed with " #Index" when several models of the
// run share that ID.
type Summary struct {
	Model    string
	Index    int
	Label    string
	Folds    int
	Accuracy Stat
	ITR      Stat
}

// Runner executes leave-one-block-out experiments.
type Runner struct {
	opts runnerOptions
}

// NewRunner builds a Runner; see WithTiming, WithJobs and WithLogger.
func NewRunner(opts ...Option) *Runner {
	return &Runner{opts: gatherOptions(opts)}
}

// Run holds out every block in turn. The returned slice is ordered fold by
// fold, models in the given order within a fold.
//
// Errors: ErrNoModels, ErrEmpty (no trials), ErrLengthMismatch (labels or
// blocks disagree with trials), ErrBadParam (fewer than two blocks or a
// non-positive window), and any Fit/Predict error, wrapped.
func (r *Runner) Run(models []cca.Model, task Task) ([]Result, error) {
	if len(models) == 0 {
		return nil, evaluatorErrorf(opRun, ErrNoModels)
	}
	d := task.Data
	if len(d.Trials) == 0 {
		return nil, evaluatorErrorf(opRun, ErrEmpty)
	}
	if len(d.Labels) != len(d.Trials) || len(d.Blocks) != len(d.Trials) {
		return nil, evaluatorErrorf(opRun, ErrLengthMismatch)
	}
	if !(task.Window > 0) {
		return nil, evaluatorErrorf(opRun, ErrBadParam)
	}
	blockNum := 0
	for _, b := range d.Blocks {
		if b < 0 {
			return nil, evaluatorErrorf(opRun, ErrBadParam)
		}
		blockNum = max(blockNum, b+1)
	}

	results := make([]Result, blockNum*len(models))
	err := parallel.For(blockNum, func(fold int) error {
		testBlocks, trainBlocks, err := LeaveOneBlockOut(blockNum, fold)
		if err != nil {
			return err
		}
		xTrain, yTrain := gather(d, SelectBlocks(d.Blocks, trainBlocks))
		xTest, yTest := gather(d, SelectBlocks(d.Blocks, testBlocks))
		if len(xTest) == 0 {
			return ErrEmpty
		}
		for i, proto := range models {
			res, err := r.runOne(proto.Clone(), task, xTrain, yTrain, xTest, yTest)
			if err != nil {
				return err
			}
			res.Fold, res.Index = fold, i
			results[fold*len(models)+i] = res
			r.opts.logger.Debug("fold finished",
				"model", res.Model, "index", i, "fold", fold,
				"acc", res.Accuracy, "itr", res.ITR,
				"train", res.TrainTime, "test", res.TestTime)
		}
		return nil
	}, parallel.FromJobs(r.opts.jobs))
	if err != nil {
		return nil, evaluatorErrorf(opRun, err)
	}

	return results, nil
}

func (r *Runner) runOne(m cca.Model, task Task, xTrain []signal.Trial, yTrain []int, xTest []signal.Trial, yTest []int) (Result, error) {
	start := time.Now()
	if err := m.Fit(task.Freqs, xTrain, yTrain, task.Refs); err != nil {
		return Result{}, err
	}
	trainTime := time.Since(start)

	start = time.Now()
	pred, err := m.Predict(xTest)
	if err != nil {
		return Result{}, err
	}
	testTime := time.Since(start)

	acc, err := Accuracy(yTest, pred)
	if err != nil {
		return Result{}, err
	}
	perTrial := testTime.Seconds() / float64(len(xTest))
	itr, err := ITR(task.Window, r.opts.tBreak, r.opts.tLatency, perTrial, len(task.Refs), acc)
	if err != nil {
		return Result{}, err
	}
	cm, err := ConfusionMatrix(yTest, pred, len(task.Refs))
	if err != nil {
		return Result{}, err
	}

	return Result{
		Model:     m.ID(),
		Accuracy:  acc,
		ITR:       itr,
		TrainTime: trainTime,
		TestTime:  testTime,
		Confusion: cm,
		Truth:     yTest,
		Predicted: pred,
	}, nil
}

// gather returns the trials and labels at idx.
func gather(d signal.Dataset, idx []int) ([]signal.Trial, []int) {
	x := make([]signal.Trial, len(idx))
	y := make([]int, len(idx))
	for j, i := range idx {
		x[j], y[j] = d.Trials[i], d.Labels[i]
	}

	return x, y
}

// Summarize groups results by model index, in order of first appearance.
// Models sharing an ID stay apart.
func Summarize(results []Result) []Summary {
	var order []int
	ids := map[int]string{}
	acc := map[int][]float64{}
	itr := map[int][]float64{}
	for _, res := range results {
		if _, ok := acc[res.Index]; !ok {
			order = append(order, res.Index)
			ids[res.Index] = res.Model
		}
		acc[res.Index] = append(acc[res.Index], res.Accuracy)
		itr[res.Index] = append(itr[res.Index], res.ITR)
	}
	shared := map[string]int{}
	for _, id := range ids {
		shared[id]++
	}

	out := make([]Summary, len(order))
	for i, idx := range order {
		label := ids[idx]
		if shared[label] > 1 {
			label = fmt.Sprintf("%s #%d", label, idx)
		}
		out[i] = Summary{
			Model:    ids[idx],
			Index:    idx,
			Label:    label,
			Folds:    len(acc[idx]),
			Accuracy: summarize(acc[idx]),
			ITR:      summarize(itr[idx]),
		}
	}

	return out
}

func summarize(x []float64) Stat {
	var s Stat
	s.Mean, s.Std, _ = MeanStd(x)
	if len(x) > 1 {
		s.CI95, _ = CI95(x)
	}

	return s
}

// TotalConfusion sums the confusion matrices of the model at index across
// folds. It returns nil when that model has no results.
func TotalConfusion(results []Result, index int) *mat.Dense {
	var total *mat.Dense
	for _, res := range results {
		if res.Index != index || res.Confusion == nil {
			continue
		}
		if total == nil {
			total = mat.DenseCopyOf(res.Confusion)
			continue
		}
		total.Add(total, res.Confusion)
	}

	return total
}
