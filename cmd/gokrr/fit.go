package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"

	"github.com/maxjr82/gokrr/dataset"
	"github.com/maxjr82/gokrr/krr"
	"github.com/maxjr82/gokrr/metrics"
	"github.com/maxjr82/gokrr/pkg/errors"
	"github.com/maxjr82/gokrr/pkg/log"
	"github.com/maxjr82/gokrr/preprocessing"
	"github.com/maxjr82/gokrr/visualize"
)

func NewFitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fit",
		Short: "Fit a KRR model and predict energies",
		Long: `Fit a kernel ridge regression model to curve data and predict at new
points. Inputs are whitespace-delimited text files: one feature row per line
for --x, one target value per line for --y. Train/test splits use 1-based
index files in the style of itrain.dat/itest.dat.`,
		RunE: runFit,
	}

	cmd.Flags().String("config", "", "YAML job file; explicit flags override it")
	cmd.Flags().String("x", "", "Training feature file")
	cmd.Flags().String("y", "", "Training target file")
	cmd.Flags().String("train-idx", "", "1-based training index file")
	cmd.Flags().String("test-idx", "", "1-based test index file")
	cmd.Flags().String("kernel", "Gaussian", "Kernel variant (Linear|Gaussian)")
	cmd.Flags().Float64("lambda", krr.DefaultLambda, "Regularization strength")
	cmd.Flags().Float64("sigma", krr.DefaultSigma, "Gaussian kernel bandwidth")
	cmd.Flags().Bool("standardize", false, "Standardize features before fitting")
	cmd.Flags().String("predict", "", "Feature file with points to predict")
	cmd.Flags().String("grid", "", "Prediction grid as start:stop:n (1-D data only)")
	cmd.Flags().String("out", "", "Output file for the prediction table (default stdout)")
	cmd.Flags().String("plot", "", "Write a curve plot to this file (.png/.svg/.pdf)")

	return cmd
}

func runFit(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	x, err := dataset.ReadMatrixFile(cfg.XFile)
	if err != nil {
		return err
	}
	y, err := dataset.ReadVectorFile(cfg.YFile)
	if err != nil {
		return err
	}

	trainX, trainY := x, y
	var testX *mat.Dense
	var testY *mat.VecDense
	if cfg.TrainIdx != "" {
		trainX, trainY, testX, testY, err = splitByIndexFiles(x, y, cfg.TrainIdx, cfg.TestIdx)
		if err != nil {
			return err
		}
	}

	queryX, err := resolveQuery(cfg, x)
	if err != nil {
		return err
	}

	// The model may see standardized features, but output and plotting
	// stay in the original units.
	fitX, predictX := mat.Matrix(trainX), mat.Matrix(queryX)
	var testFitX mat.Matrix = testX
	if cfg.Standardize {
		scaler := preprocessing.NewStandardScaler()
		if fitX, err = scaler.FitTransform(trainX); err != nil {
			return err
		}
		if predictX, err = scaler.Transform(queryX); err != nil {
			return err
		}
		if testX != nil {
			if testFitX, err = scaler.Transform(testX); err != nil {
				return err
			}
		}
	}

	model, err := krr.New(cfg.Kernel, krr.WithLambda(cfg.Lambda), krr.WithSigma(cfg.Sigma))
	if err != nil {
		return err
	}

	logger := log.With("KRR")

	start := time.Now()
	if err := model.Fit(fitX, trainY); err != nil {
		return err
	}
	n, p := model.Dimensions()
	log.Duration(log.FitEvent(logger.Info(), n, p, cfg.Lambda), time.Since(start)).
		Str(log.KernelKey, model.Kernel()).
		Msg("model fitted")

	if err := reportFit(logger, model, fitX, trainY, "train"); err != nil {
		return err
	}
	if testX != nil {
		if err := reportFit(logger, model, testFitX, testY, "test"); err != nil {
			return err
		}
	}

	pred, err := model.Predict(predictX)
	if err != nil {
		return err
	}

	if err := writePredictions(cfg, queryX, pred); err != nil {
		return err
	}

	if cfg.Plot != "" {
		if err := plotCurve(cfg, model, x, y, trainX, trainY, queryX, pred); err != nil {
			return err
		}
		logger.Info().Str("path", cfg.Plot).Msg("plot written")
	}
	return nil
}

// resolveConfig merges the optional YAML job file with the command flags.
// Flags that were set explicitly take precedence.
func resolveConfig(cmd *cobra.Command) (JobConfig, error) {
	cfg := DefaultJobConfig()

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		var err error
		if cfg, err = LoadJobConfig(path); err != nil {
			return cfg, err
		}
	}

	f := cmd.Flags()
	if f.Changed("kernel") {
		cfg.Kernel, _ = f.GetString("kernel")
	}
	if f.Changed("lambda") {
		cfg.Lambda, _ = f.GetFloat64("lambda")
	}
	if f.Changed("sigma") {
		cfg.Sigma, _ = f.GetFloat64("sigma")
	}
	if f.Changed("x") {
		cfg.XFile, _ = f.GetString("x")
	}
	if f.Changed("y") {
		cfg.YFile, _ = f.GetString("y")
	}
	if f.Changed("train-idx") {
		cfg.TrainIdx, _ = f.GetString("train-idx")
	}
	if f.Changed("test-idx") {
		cfg.TestIdx, _ = f.GetString("test-idx")
	}
	if f.Changed("predict") {
		cfg.PredictFile, _ = f.GetString("predict")
	}
	if f.Changed("grid") {
		cfg.Grid, _ = f.GetString("grid")
	}
	if f.Changed("standardize") {
		cfg.Standardize, _ = f.GetBool("standardize")
	}
	if f.Changed("out") {
		cfg.Out, _ = f.GetString("out")
	}
	if f.Changed("plot") {
		cfg.Plot, _ = f.GetString("plot")
	}
	return cfg, nil
}

func splitByIndexFiles(x *mat.Dense, y *mat.VecDense, trainIdxPath, testIdxPath string) (trainX *mat.Dense, trainY *mat.VecDense, testX *mat.Dense, testY *mat.VecDense, err error) {
	trainIdx, err := dataset.ReadIndicesFile(trainIdxPath)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if trainX, err = dataset.Select(x, trainIdx); err != nil {
		return nil, nil, nil, nil, err
	}
	if trainY, err = dataset.SelectVec(y, trainIdx); err != nil {
		return nil, nil, nil, nil, err
	}

	if testIdxPath != "" {
		testIdx, err := dataset.ReadIndicesFile(testIdxPath)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		if testX, err = dataset.Select(x, testIdx); err != nil {
			return nil, nil, nil, nil, err
		}
		if testY, err = dataset.SelectVec(y, testIdx); err != nil {
			return nil, nil, nil, nil, err
		}
	}
	return trainX, trainY, testX, testY, nil
}

// resolveQuery picks the points to predict at: an explicit file, a linspace
// grid, or the full input data when neither is given.
func resolveQuery(cfg JobConfig, x *mat.Dense) (*mat.Dense, error) {
	switch {
	case cfg.PredictFile != "":
		return dataset.ReadMatrixFile(cfg.PredictFile)
	case cfg.Grid != "":
		if _, c := x.Dims(); c != 1 {
			return nil, errors.New("--grid requires one-dimensional features")
		}
		start, stop, n, err := parseGrid(cfg.Grid)
		if err != nil {
			return nil, err
		}
		return dataset.Linspace(start, stop, n)
	default:
		return x, nil
	}
}

// reportFit logs MSE, RMSE and R² of the model on one data split.
func reportFit(logger zerolog.Logger, model *krr.KRR, X mat.Matrix, y *mat.VecDense, split string) error {
	pred, err := model.Predict(X)
	if err != nil {
		return err
	}
	predVec := columnVec(pred)

	mse, err := metrics.MSE(y, predVec)
	if err != nil {
		return err
	}
	rmse, err := metrics.RMSE(y, predVec)
	if err != nil {
		return err
	}
	r2, err := metrics.R2(y, predVec)
	if err != nil {
		return err
	}

	logger.Info().
		Str("split", split).
		Float64("mse", mse).
		Float64("rmse", rmse).
		Float64("r2", r2).
		Msg("fit quality")
	return nil
}

// writePredictions writes the prediction table, pairing the feature value
// with the predicted target for one-dimensional data.
func writePredictions(cfg JobConfig, queryX *mat.Dense, pred mat.Matrix) error {
	w := os.Stdout
	if cfg.Out != "" {
		f, err := os.Create(cfg.Out)
		if err != nil {
			return errors.Wrapf(err, "create %s", cfg.Out)
		}
		defer f.Close()
		w = f
	}

	predVec := columnVec(pred)
	if _, c := queryX.Dims(); c == 1 {
		return dataset.WriteTable(w, columnVec(queryX), predVec)
	}
	return dataset.WriteTable(w, predVec)
}

func plotCurve(cfg JobConfig, model *krr.KRR, x *mat.Dense, y *mat.VecDense, trainX *mat.Dense, trainY *mat.VecDense, queryX *mat.Dense, pred mat.Matrix) error {
	if _, c := x.Dims(); c != 1 {
		return errors.New("--plot requires one-dimensional features")
	}

	plot := visualize.NewCurvePlot(
		"KRR fit ("+model.Kernel()+" kernel)",
		"R, Angstrom",
		"E, Hartree",
	)
	if err := plot.AddTruth(x, y); err != nil {
		return err
	}
	if err := plot.AddPrediction(queryX, pred); err != nil {
		return err
	}
	if err := plot.AddTraining(trainX, trainY); err != nil {
		return err
	}
	return plot.Save(cfg.Plot)
}

// columnVec copies the first column of m into a vector.
func columnVec(m mat.Matrix) *mat.VecDense {
	r, _ := m.Dims()
	v := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		v.SetVec(i, m.At(i, 0))
	}
	return v
}
