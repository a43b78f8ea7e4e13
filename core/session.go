package core

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/encodeous/hopsim/state"
)

var errInputClosed = errors.New("input closed")

const helpText = `Erroneous command!
Enter one of these commands:
NR (new router)
P (print)
C (connect)
NN (new network)
PA (print all)
S (send routing tables)
RR (route request)
Q (quit)
`

// Session reads commands from the user and executes them on the main loop.
type Session struct {
	env         *state.Env
	router      Observer
	out         io.Writer
	lines       <-chan state.Pair[string, error]
	interactive bool
}

func NewSession(env *state.Env, router Observer, in io.Reader, out io.Writer, interactive bool) *Session {
	lines := make(chan state.Pair[string, error])
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- state.Pair[string, error]{V1: scanner.Text()}:
			case <-env.Context.Done():
				return
			}
		}
		if err := scanner.Err(); err != nil {
			select {
			case lines <- state.Pair[string, error]{V2: fmt.Errorf("reading input: %w", err)}:
			case <-env.Context.Done():
			}
		}
	}()
	return &Session{
		env:         env,
		router:      router,
		out:         out,
		lines:       lines,
		interactive: interactive,
	}
}

// Run handles commands until the user quits or the input ends.
func (s *Session) Run() error {
	for {
		cmd, err := s.prompt(state.DefaultPrompt)
		if err != nil {
			return ignoreClosed(err)
		}
		quit, err := s.Handle(strings.ToUpper(cmd))
		if err != nil {
			return ignoreClosed(err)
		}
		if quit {
			return nil
		}
	}
}

func ignoreClosed(err error) error {
	if errors.Is(err, errInputClosed) || errors.Is(err, errShutdown) {
		return nil
	}
	return err
}

func (s *Session) prompt(label string) (string, error) {
	if s.interactive {
		fmt.Fprint(s.out, label)
	}
	select {
	case line, ok := <-s.lines:
		if !ok {
			return "", errInputClosed
		}
		if line.V2 != nil {
			return "", line.V2
		}
		return strings.TrimSpace(line.V1), nil
	case <-s.env.Context.Done():
		return "", context.Cause(s.env.Context)
	}
}

// Handle executes one command. It returns true when the session should end.
func (s *Session) Handle(cmd string) (bool, error) {
	var err error
	switch cmd {
	case "P":
		err = s.printRouter()
	case "PA":
		err = s.printAll()
	case "S":
		err = s.send()
	case "C":
		err = s.connect()
	case "RR":
		err = s.routeRequest()
	case "NR":
		err = s.newRouter()
	case "NN":
		err = s.newNetwork()
	case "Q":
		fmt.Fprintln(s.out, "Simulator closes.")
		return true, nil
	default:
		fmt.Fprint(s.out, helpText)
	}
	return false, s.report(err)
}

// report turns recoverable errors into messages for the user
func (s *Session) report(err error) error {
	switch {
	case err == nil:
	case errors.Is(err, state.ErrNotFound):
		fmt.Fprintln(s.out, "Router was not found.")
	case errors.Is(err, state.ErrNameConflict):
		fmt.Fprintln(s.out, "Name is taken.")
	case errors.Is(err, state.ErrInvalidDistance):
		fmt.Fprintln(s.out, "Distance must be a non-negative integer.")
	case errors.Is(err, state.ErrInvalidName):
		fmt.Fprintln(s.out, "Error:", err.Error())
	default:
		return err
	}
	return nil
}

func (s *Session) printRouter() error {
	name, err := s.prompt("Enter router name: ")
	if err != nil {
		return err
	}
	text, err := state.Query(s.env, func(st *state.State) (string, error) {
		r, err := st.Lookup(state.NodeId(name))
		if err != nil {
			return "", err
		}
		return r.Render(), nil
	})
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, text)
	return nil
}

func (s *Session) printAll() error {
	text, err := state.Query(s.env, func(st *state.State) (string, error) {
		sb := strings.Builder{}
		for _, r := range st.Routers() {
			sb.WriteString(r.Render())
		}
		return sb.String(), nil
	})
	if err != nil {
		return err
	}
	fmt.Fprint(s.out, text)
	return nil
}

func (s *Session) send() error {
	name, err := s.prompt("Sending router: ")
	if err != nil {
		return err
	}
	_, err = state.Query(s.env, func(st *state.State) (SendResult, error) {
		return Send(st.Registry, state.NodeId(name), s.router)
	})
	return err
}

func (s *Session) connect() error {
	first, err := s.prompt("Enter 1st router: ")
	if err != nil {
		return err
	}
	second, err := s.prompt("Enter 2nd router: ")
	if err != nil {
		return err
	}
	_, err = s.env.DispatchWait(func(st *state.State) (any, error) {
		return nil, st.Connect(state.NodeId(first), state.NodeId(second))
	})
	return err
}

func (s *Session) routeRequest() error {
	name, err := s.prompt("Enter router name: ")
	if err != nil {
		return err
	}
	network, err := s.prompt("Enter network name: ")
	if err != nil {
		return err
	}
	status, err := state.Query(s.env, func(st *state.State) (state.RouteStatus, error) {
		return QueryRoute(st.Registry, state.NodeId(name), network)
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(s.out, DescribeRoute(network, status))
	return nil
}

func DescribeRoute(network string, status state.RouteStatus) string {
	switch status.Kind {
	case state.RouteEdge:
		return "Router is an edge router for the network."
	case state.RouteHops:
		return fmt.Sprintf("Network %s is %d hops away", network, status.Distance)
	default:
		return "Route to the network is unknown."
	}
}

func (s *Session) newRouter() error {
	name, err := s.prompt("Enter a new name: ")
	if err != nil {
		return err
	}
	if err := state.NameValidator(name); err != nil {
		return err
	}
	_, err = s.env.DispatchWait(func(st *state.State) (any, error) {
		return st.Register(state.NodeId(name))
	})
	return err
}

func (s *Session) newNetwork() error {
	name, err := s.prompt("Enter router name: ")
	if err != nil {
		return err
	}
	id := state.NodeId(name)
	_, err = s.env.DispatchWait(func(st *state.State) (any, error) {
		return st.Lookup(id)
	})
	if err != nil {
		return err
	}
	network, err := s.prompt("Enter network: ")
	if err != nil {
		return err
	}
	if err := state.AddressValidator(network); err != nil {
		return err
	}
	text, err := s.prompt("Enter distance: ")
	if err != nil {
		return err
	}
	distance, err := state.ParseDistance(text)
	if err != nil {
		return err
	}
	_, err = s.env.DispatchWait(func(st *state.State) (any, error) {
		r, err := st.Lookup(id)
		if err != nil {
			return nil, err
		}
		r.AddNetwork(network, distance)
		return nil, nil
	})
	return err
}
