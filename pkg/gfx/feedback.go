package gfx

import "fmt"

// TransformFeedback captures vertex shader outputs into buffers. The varyings
// are chosen with WithFeedbackVaryings on the Program.
type TransformFeedback struct {
	be          Backend
	id          TransformFeedbackID
	initialized bool
}

func NewTransformFeedback() *TransformFeedback {
	return &TransformFeedback{}
}

func (tf *TransformFeedback) initOnce(be Backend) {
	if tf.initialized {
		return
	}
	tf.be = be
	tf.id = be.CreateTransformFeedback()
	be.BindTransformFeedback(tf.id)
	tf.initialized = true
}

// Feedback draws count vertices in mode, writing the captured varyings to
// targets, one buffer per binding index.
func (tf *TransformFeedback) Feedback(mode DrawMode, targets []*Buffer, count int) error {
	if !tf.initialized {
		return fmt.Errorf("transform feedback: %w", ErrNotInitialized)
	}
	ids := make([]BufferID, len(targets))
	for i, b := range targets {
		id, err := b.Handle()
		if err != nil {
			return fmt.Errorf("transform feedback target %d: %w", i, err)
		}
		ids[i] = id
	}

	for i, id := range ids {
		tf.be.BindBufferBase(TransformFeedbackBuffer, uint32(i), id)
	}
	tf.be.BeginTransformFeedback(mode)
	tf.be.DrawArrays(mode, 0, count)
	tf.be.EndTransformFeedback()
	for i := range ids {
		tf.be.BindBufferBase(TransformFeedbackBuffer, uint32(i), 0)
	}
	return nil
}

// Delete tells the backend to delete the transform feedback.
func (tf *TransformFeedback) Delete() {
	if !tf.initialized {
		return
	}
	tf.be.DeleteTransformFeedback(tf.id)
	tf.id = 0
	tf.initialized = false
}

func (tf *TransformFeedback) Initialized() bool {
	return tf.initialized
}

// Handle returns the GPU transform feedback, or ErrNotInitialized.
func (tf *TransformFeedback) Handle() (TransformFeedbackID, error) {
	if !tf.initialized {
		return 0, ErrNotInitialized
	}
	return tf.id, nil
}
