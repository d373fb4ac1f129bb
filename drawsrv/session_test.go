package drawsrv

import (
	"testing"

	"github.com/tutils/lcgrand/lcg"
)

func TestSessionHandle(t *testing.T) {
	s := NewSession(lcg.New(lcg.WithSeed(42)))

	resp := s.Handle(IntRequest(1, 10))
	if resp.Error != "" || resp.Int == nil || *resp.Int != 6 {
		t.Fatalf("int: %+v", resp)
	}
	if resp.State != 3397979675 {
		t.Fatalf("state %d", resp.State)
	}

	resp = s.Handle(Request{Op: OpFloat})
	if resp.Float == nil || *resp.Float < 0 || *resp.Float >= 1 {
		t.Fatalf("float: %+v", resp)
	}
	if s.Draws() != 2 {
		t.Fatalf("draws %d", s.Draws())
	}

	resp = s.Handle(Request{Op: OpReset})
	if resp.State != 42 {
		t.Fatalf("reset: %+v", resp)
	}
}

func TestSessionErrors(t *testing.T) {
	s := NewSession(lcg.New(lcg.WithSeed(7)))

	resp := s.Handle(IntRequest(10, 1))
	if resp.Code != CodeInvalidRange || resp.Int != nil {
		t.Fatalf("invalid range: %+v", resp)
	}
	if resp.State != 7 {
		t.Fatalf("invalid range moved state to %d", resp.State)
	}

	for _, msg := range []string{
		`{"op":"int","low":1}`,
		`{"op":"int","high":10}`,
		`{"op":"int"}`,
	} {
		resp = s.HandleMessage([]byte(msg))
		if resp.Code != CodeBadRequest || resp.Int != nil || resp.State != 7 {
			t.Fatalf("%s: %+v", msg, resp)
		}
	}

	resp = s.Handle(Request{Op: "gauss"})
	if resp.Code != CodeBadRequest {
		t.Fatalf("unknown op: %+v", resp)
	}

	resp = s.HandleMessage([]byte("{not json"))
	if resp.Code != CodeBadRequest || resp.State != 7 {
		t.Fatalf("bad json: %+v", resp)
	}
	if s.Draws() != 0 {
		t.Fatalf("draws %d", s.Draws())
	}

	// zero bounds are present, not missing
	resp = s.HandleMessage([]byte(`{"op":"int","low":0,"high":0}`))
	if resp.Code != "" || resp.Int == nil || *resp.Int != 0 {
		t.Fatalf("zero bounds: %+v", resp)
	}
}
