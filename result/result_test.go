package result_test

import (
	"errors"
	"testing"

	. "github.com/npillmayer/markup/result"
)

func TestResultSimple(t *testing.T) {
	x := Ok(7) // infers type
	y := Err[int](errors.New("not ok"))

	var v int
	var e error

	switch m := x.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	switch m := y.Match(); m {
	case m.Ok(&v):
		t.Logf("Ok(%d)", v)
	case m.Err(&e):
		t.Logf("Err: %s", e.Error())
	}
	if e == nil {
		t.Errorf("expected error to be non-nil, but it is nil")
	}
}

func TestResultGet(t *testing.T) {
	v, err := Of(3, nil).Get()
	if v != 3 || err != nil {
		t.Errorf("expected (3, nil), have (%d, %v)", v, err)
	}
	boom := errors.New("boom")
	r := Of(3, boom)
	if r.IsOk() {
		t.Errorf("expected result with error not to be Ok")
	}
	if _, err = r.Get(); !errors.Is(err, boom) {
		t.Errorf("expected error to be boom, is %v", err)
	}
	if r.WithDefault(-1) != -1 {
		t.Errorf("expected default for Err result")
	}
}

func TestResultErrNil(t *testing.T) {
	r := Err[string](nil)
	if r.IsOk() {
		t.Errorf("expected Err(nil) to still be an error")
	}
}

func TestResultTryRecovers(t *testing.T) {
	r := Try(func() (int, error) {
		panic("broken")
	})
	if _, err := r.Get(); err == nil {
		t.Errorf("expected recovered panic to be an error")
	}
	ok := Try(func() (int, error) { return 5, nil })
	if ok.WithDefault(0) != 5 {
		t.Errorf("expected Try to pass through value")
	}
}

func TestResultMap(t *testing.T) {
	r := Map(Ok(2), func(n int) string { return "x" })
	if s, _ := r.Get(); s != "x" {
		t.Errorf("expected mapped value x, is %q", s)
	}
	e := Map(Err[int](errors.New("e")), func(n int) string { return "x" })
	if e.IsOk() {
		t.Errorf("expected map over Err to stay Err")
	}
}
