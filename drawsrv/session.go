package drawsrv

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/tutils/lcgrand/lcg"
)

// Session owns the generator of one connection.
type Session struct {
	g     *lcg.Generator
	draws int64
}

// NewSession wraps g. The session takes ownership of g.
func NewSession(g *lcg.Generator) *Session {
	return &Session{g: g}
}

// Draws reports how many values the session produced.
func (s *Session) Draws() int64 {
	return s.draws
}

// Seed returns the generator seed.
func (s *Session) Seed() int64 {
	return s.g.Seed()
}

// HandleMessage decodes a raw request and handles it.
func (s *Session) HandleMessage(data []byte) Response {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return Response{
			State: s.g.State(),
			Code:  CodeBadRequest,
			Error: err.Error(),
		}
	}
	return s.Handle(req)
}

// Handle applies req to the generator.
func (s *Session) Handle(req Request) Response {
	resp := Response{Op: req.Op}
	switch req.Op {
	case OpInt:
		if req.Low == nil || req.High == nil {
			resp.Code = CodeBadRequest
			resp.Error = "int needs low and high"
			break
		}
		v, err := s.g.NextInt(*req.Low, *req.High)
		if err != nil {
			resp.Code = CodeBadRequest
			if errors.Is(err, lcg.ErrInvalidRange) {
				resp.Code = CodeInvalidRange
			}
			resp.Error = err.Error()
			break
		}
		resp.Int = &v
		s.draws++
	case OpFloat:
		f := s.g.NextFloat()
		resp.Float = &f
		s.draws++
	case OpState:
	case OpReset:
		s.g.Reset()
	default:
		resp.Code = CodeBadRequest
		resp.Error = fmt.Sprintf("unknown op %q", req.Op)
	}
	resp.State = s.g.State()
	return resp
}
