package state

import (
	"context"
	"fmt"
)

// Dispatch Dispatches the function to run on the main thread without waiting for it to complete
func (e *Env) Dispatch(fun func(*State) error) {
	defer func() {
		if r := recover(); r != nil {
			e.Cancel(fmt.Errorf("panic: %v", r))
		}
	}()
	select {
	case e.DispatchChannel <- fun:
	case <-e.Context.Done():
	}
}

// DispatchWait Dispatches the function to run on the main thread and wait for it to complete.
// Errors returned by fun are handed back to the caller and do not stop the main loop.
func (e *Env) DispatchWait(fun func(*State) (any, error)) (any, error) {
	ret := make(chan Pair[any, error], 1)
	select {
	case e.DispatchChannel <- func(s *State) error {
		res, err := fun(s)
		ret <- Pair[any, error]{res, err}
		return nil
	}:
	case <-e.Context.Done():
		return nil, context.Cause(e.Context)
	}
	select {
	case res := <-ret:
		return res.V1, res.V2
	case <-e.Context.Done():
		return nil, context.Cause(e.Context)
	}
}

// Query is a typed DispatchWait
func Query[T any](e *Env, fun func(*State) (T, error)) (T, error) {
	res, err := e.DispatchWait(func(s *State) (any, error) {
		return fun(s)
	})
	v, _ := res.(T)
	return v, err
}
