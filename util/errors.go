package util

// ErrWrap returns a closure that unwraps a (value, error) pair,
// falling back to the given value on error:
//
//	path := util.ErrWrap("default")(cmd.Flags().GetString("output"))
func ErrWrap[T any](fallback T) func(T, error) T {
	return func(data T, err error) T {
		if err != nil {
			return fallback
		}
		return data
	}
}

// ErrOnly drops the value of a (value, error) pair.
func ErrOnly[T any](_ T, err error) error {
	return err
}

// ErrSuppress swallows an error on purpose.
func ErrSuppress(err error) {
	_ = err
}
