package classifier

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"
	"golang.org/x/net/context"

	"NeuroScan/pkg/imaging"
)

// NumClasses is fixed by the trained artifact: one score per diagnostic label.
const NumClasses = 4

type IClassifier interface {
	Predict(c context.Context, tensor []float32) ([]float32, error)
	Close()
}

type classifier struct {
	session *ort.DynamicAdvancedSession
}

// New loads the ONNX artifact at modelPath. The session is read-only after
// construction and safe for concurrent Predict calls; each call allocates its
// own input and output tensors.
func New(modelPath string) (IClassifier, error) {
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("initialize onnx environment: %w", err)
	}

	session, err := ort.NewDynamicAdvancedSession(modelPath,
		[]string{"input"}, []string{"output"}, nil)
	if err != nil {
		_ = ort.DestroyEnvironment()
		return nil, fmt.Errorf("create onnx session: %w", err)
	}

	return &classifier{session: session}, nil
}

func (cl *classifier) Predict(c context.Context, tensor []float32) ([]float32, error) {
	if err := c.Err(); err != nil {
		return nil, err
	}

	if len(tensor) != imaging.TensorLen {
		return nil, fmt.Errorf("inference failed: expected %d input values, got %d",
			imaging.TensorLen, len(tensor))
	}

	inputShape := ort.NewShape(1, imaging.TargetSize, imaging.TargetSize, imaging.Channels)
	input, err := ort.NewTensor(inputShape, tensor)
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}
	defer input.Destroy()

	output, err := ort.NewEmptyTensor[float32](ort.NewShape(1, NumClasses))
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}
	defer output.Destroy()

	if err := cl.session.Run([]ort.ArbitraryTensor{input}, []ort.ArbitraryTensor{output}); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	scores := make([]float32, NumClasses)
	copy(scores, output.GetData())

	return scores, nil
}

func (cl *classifier) Close() {
	if cl.session != nil {
		cl.session.Destroy()
	}
	ort.DestroyEnvironment()
}
