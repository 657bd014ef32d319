package vocab

// EncodingFunction is a reversible byte-level re-encoding applied when a
// field value is read for display. Stages are stateless value objects
// with no back-reference to the field.
type EncodingFunction interface {
	Name() string
	Encode(value []byte) ([]byte, error)
}

// VisualizationFunction annotates a value for presentation. It never
// changes the underlying value seen by later processing.
type VisualizationFunction interface {
	Name() string
	Style(value []byte) ([]byte, error)
}

// TransformationFunction rewrites content semantically, e.g. for fuzzing
// or mutation. Applied to generated content after assembly.
type TransformationFunction interface {
	Name() string
	Transform(value []byte) ([]byte, error)
}

// EncodingFunctions returns the live ordered encoding pipeline.
func (n *Node) EncodingFunctions() []EncodingFunction { return n.encodingFunctions }

// SetEncodingFunctions clears the pipeline then appends every stage of
// fns in order.
func (n *Node) SetEncodingFunctions(fns []EncodingFunction) {
	n.ClearEncodingFunctions()
	n.encodingFunctions = append(n.encodingFunctions, fns...)
}

// ClearEncodingFunctions removes every encoding stage.
func (n *Node) ClearEncodingFunctions() { n.encodingFunctions = nil }

// VisualizationFunctions returns the live ordered visualization pipeline.
func (n *Node) VisualizationFunctions() []VisualizationFunction { return n.visualizationFunctions }

// SetVisualizationFunctions clears the pipeline then appends every stage
// of fns in order.
func (n *Node) SetVisualizationFunctions(fns []VisualizationFunction) {
	n.ClearVisualizationFunctions()
	n.visualizationFunctions = append(n.visualizationFunctions, fns...)
}

// ClearVisualizationFunctions removes every visualization stage.
func (n *Node) ClearVisualizationFunctions() { n.visualizationFunctions = nil }

// TransformationFunctions returns the live ordered transformation
// pipeline.
func (n *Node) TransformationFunctions() []TransformationFunction { return n.transformationFunctions }

// SetTransformationFunctions clears the pipeline then appends every stage
// of fns in order.
func (n *Node) SetTransformationFunctions(fns []TransformationFunction) {
	n.ClearTransformationFunctions()
	n.transformationFunctions = append(n.transformationFunctions, fns...)
}

// ClearTransformationFunctions removes every transformation stage.
func (n *Node) ClearTransformationFunctions() { n.transformationFunctions = nil }

// applyEncodings folds the encoding pipeline left to right. Zero stages
// is the identity. A failing stage aborts the remainder.
func applyEncodings(fns []EncodingFunction, value []byte) ([]byte, error) {
	out := value
	for _, fn := range fns {
		next, err := fn.Encode(out)
		if err != nil {
			return nil, EncodingError{Stage: fn.Name(), Err: err}
		}
		out = next
	}
	return out, nil
}

func applyVisualizations(fns []VisualizationFunction, value []byte) ([]byte, error) {
	out := value
	for _, fn := range fns {
		next, err := fn.Style(out)
		if err != nil {
			return nil, EncodingError{Stage: fn.Name(), Err: err}
		}
		out = next
	}
	return out, nil
}

func applyTransformations(fns []TransformationFunction, value []byte) ([]byte, error) {
	out := value
	for _, fn := range fns {
		next, err := fn.Transform(out)
		if err != nil {
			return nil, TransformationError{Stage: fn.Name(), Err: err}
		}
		out = next
	}
	return out, nil
}
