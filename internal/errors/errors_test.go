package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-stats/internal/errors"
)

type ErrorsTestSuite struct {
	suite.Suite
}

func TestErrorsSuite(t *testing.T) {
	suite.Run(t, new(ErrorsTestSuite))
}

func (s *ErrorsTestSuite) TestNewError() {
	testCases := []struct {
		name     string
		code     errors.Code
		message  string
		expected string
	}{
		{
			name:     "not found error",
			code:     errors.CodeNotFound,
			message:  "no rolls recorded",
			expected: "NOT_FOUND: no rolls recorded",
		},
		{
			name:     "invalid argument error",
			code:     errors.CodeInvalidArgument,
			message:  "level must be positive",
			expected: "INVALID_ARGUMENT: level must be positive",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := errors.New(tc.code, tc.message)
			s.Assert().Equal(tc.expected, err.Error())
			s.Assert().Equal(tc.code, err.Code)
			s.Assert().Equal(tc.message, err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestErrorWithMeta() {
	err := errors.NotFound("no rolls recorded").
		WithMeta("entity_id", "char-1").
		WithMeta("context", "hit_points")

	s.Assert().Equal("char-1", err.Meta["entity_id"])
	s.Assert().Equal("hit_points", err.Meta["context"])

	err2 := errors.Internal("roller failed").
		WithMetaMap(map[string]interface{}{
			"level": 3,
			"faces": 10,
		})

	s.Assert().Equal(3, err2.Meta["level"])
	s.Assert().Equal(10, err2.Meta["faces"])
}

func (s *ErrorsTestSuite) TestWrap() {
	baseErr := fmt.Errorf("connection refused")
	wrapped := errors.Wrap(baseErr, "failed to load roll log")

	s.Assert().Equal(errors.CodeInternal, wrapped.Code)
	s.Assert().Equal("failed to load roll log", wrapped.Message)
	s.Assert().Equal(baseErr, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapPreservesCode() {
	original := errors.InvalidArgument("bad hit dice").WithMeta("input", "d0")
	wrapped := errors.Wrapf(original, "homebrew class %q", "Gunslinger")

	s.Assert().Equal(errors.CodeInvalidArgument, wrapped.Code)
	s.Assert().Equal("d0", wrapped.Meta["input"])
	s.Assert().True(stderrors.Is(wrapped, original))
}

func (s *ErrorsTestSuite) TestWrapWithCode() {
	original := errors.Internal("dial tcp").WithMeta("addr", "localhost:6379")
	wrapped := errors.WrapWithCode(original, errors.CodeUnavailable, "redis is not reachable")

	s.Assert().Equal(errors.CodeUnavailable, wrapped.Code)
	s.Assert().Equal("localhost:6379", wrapped.Meta["addr"])
	s.Assert().Equal(original, wrapped.Unwrap())
}

func (s *ErrorsTestSuite) TestWrapNil() {
	s.Assert().Nil(errors.Wrap(nil, "nothing"))
	s.Assert().Nil(errors.WrapWithCode(nil, errors.CodeInternal, "nothing"))
}

func (s *ErrorsTestSuite) TestConstructorFunctions() {
	testCases := []struct {
		name string
		err  *errors.Error
		code errors.Code
	}{
		{"NotFound", errors.NotFound("x"), errors.CodeNotFound},
		{"InvalidArgument", errors.InvalidArgument("x"), errors.CodeInvalidArgument},
		{"FailedPrecondition", errors.FailedPrecondition("x"), errors.CodeFailedPrecondition},
		{"Internal", errors.Internal("x"), errors.CodeInternal},
		{"Unavailable", errors.Unavailable("x"), errors.CodeUnavailable},
		{"Canceled", errors.Canceled("x"), errors.CodeCanceled},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Assert().Equal(tc.code, tc.err.Code)
			s.Assert().Equal("x", tc.err.Message)
		})
	}
}

func (s *ErrorsTestSuite) TestFormattedConstructors() {
	s.Assert().Equal("level 0 is below 1", errors.InvalidArgumentf("level %d is below %d", 0, 1).Message)
	s.Assert().Equal("no rolls for char-1", errors.NotFoundf("no rolls for %s", "char-1").Message)
	s.Assert().Equal("rolled 11 on a d10", errors.Internalf("rolled %d on a d%d", 11, 10).Message)
}

func (s *ErrorsTestSuite) TestErrorIs() {
	err1 := errors.NotFound("one")
	err2 := errors.NotFound("two")
	err3 := errors.Internal("three")

	s.Assert().True(stderrors.Is(err1, err2))
	s.Assert().False(stderrors.Is(err1, err3))
}

func (s *ErrorsTestSuite) TestHelperFunctions() {
	s.Assert().True(errors.IsNotFound(errors.NotFound("x")))
	s.Assert().True(errors.IsInvalidArgument(errors.Wrap(errors.InvalidArgument("x"), "wrapped")))
	s.Assert().True(errors.IsFailedPrecondition(errors.FailedPrecondition("x")))
	s.Assert().True(errors.IsInternal(fmt.Errorf("plain")))
	s.Assert().True(errors.IsUnavailable(errors.Unavailable("x")))
	s.Assert().True(errors.IsCanceled(errors.Canceled("x")))
	s.Assert().False(errors.IsNotFound(nil))
}

func (s *ErrorsTestSuite) TestGetCode() {
	s.Assert().Equal(errors.CodeOK, errors.GetCode(nil))
	s.Assert().Equal(errors.CodeNotFound, errors.GetCode(errors.NotFound("x")))
	s.Assert().Equal(errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestGetMeta() {
	s.Assert().Nil(errors.GetMeta(nil))
	s.Assert().Nil(errors.GetMeta(fmt.Errorf("plain")))
	s.Assert().Equal("char-1", errors.GetMeta(errors.NotFound("x").WithMeta("entity_id", "char-1"))["entity_id"])
}

func (s *ErrorsTestSuite) TestGetMessage() {
	s.Assert().Equal("", errors.GetMessage(nil))
	s.Assert().Equal("no rolls", errors.GetMessage(errors.NotFound("no rolls")))
	s.Assert().Equal("plain", errors.GetMessage(fmt.Errorf("plain")))
}

func (s *ErrorsTestSuite) TestExitCode() {
	testCases := []struct {
		code     errors.Code
		expected int
	}{
		{errors.CodeOK, 0},
		{errors.CodeCanceled, 0},
		{errors.CodeInvalidArgument, 2},
		{errors.CodeOutOfRange, 2},
		{errors.CodeNotFound, 3},
		{errors.CodeFailedPrecondition, 1},
		{errors.CodeInternal, 1},
		{errors.CodeUnavailable, 1},
		{errors.Code("SOMETHING_ELSE"), 1},
	}

	for _, tc := range testCases {
		s.Run(tc.code.String(), func() {
			s.Assert().Equal(tc.expected, tc.code.ExitCode())
		})
	}
}

func (s *ErrorsTestSuite) TestExitCodeFromError() {
	s.Assert().Equal(0, errors.ExitCode(nil))
	s.Assert().Equal(0, errors.ExitCode(errors.Wrap(errors.Canceled("esc"), "menu")))
	s.Assert().Equal(2, errors.ExitCode(errors.InvalidArgument("bad")))
	s.Assert().Equal(1, errors.ExitCode(fmt.Errorf("plain")))
}
