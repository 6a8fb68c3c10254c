package env

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/joho/godotenv"

	"github.com/kbukum/validenv/errors"
	"github.com/kbukum/validenv/logger"
)

func newTestLogger(buf *bytes.Buffer) *logger.Logger {
	return logger.New(&logger.Config{Level: "debug", Format: "json", Writer: buf}, "test")
}

func dotenv(t *testing.T, src string) MapLookup {
	t.Helper()
	m, err := godotenv.Unmarshal(src)
	if err != nil {
		t.Fatalf("invalid dotenv fixture: %v", err)
	}
	return MapLookup(m)
}

var stringConv = ConverterFunc[string](func(raw string, _ Context) (string, error) {
	return raw, nil
})

var intConv = ConverterFunc[int](func(raw string, ctx Context) (int, error) {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, FormatError[int](raw, ctx, err)
	}
	return n, nil
})

var boolConv = ConverterFunc[bool](func(raw string, ctx Context) (bool, error) {
	switch strings.ToLower(raw) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, FormatError[bool](raw, ctx, nil)
})

func TestLoad_ResolvesFromProcessEnvironment(t *testing.T) {
	t.Setenv("TEST", "ABC")

	v := New("TEST", stringConv)
	got, err := v.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ABC" {
		t.Errorf("expected 'ABC', got %q", got)
	}
	stored, ok := v.Value()
	if !ok || stored != "ABC" {
		t.Errorf("expected stored value 'ABC', got %q (loaded=%v)", stored, ok)
	}
	if v.Outcome() != OutcomeResolved {
		t.Errorf("expected outcome resolved, got %q", v.Outcome())
	}
}

func TestLoad_ValueUnsetBeforeLoad(t *testing.T) {
	v := New("TEST", stringConv).WithFallback("x")
	if _, ok := v.Value(); ok {
		t.Error("expected no value before Load")
	}
	if v.Outcome() != OutcomeNone {
		t.Errorf("expected no outcome before Load, got %q", v.Outcome())
	}
}

func TestLoad_MissingWithoutFallback(t *testing.T) {
	v := New("DB_HOST", stringConv).
		WithDescription("Database host").
		WithLookup(MapLookup{})

	_, err := v.Load()
	if err == nil {
		t.Fatal("expected error for missing variable")
	}
	if !errors.HasCode(err, errors.ErrCodeMissingVariable) {
		t.Errorf("expected MISSING_VARIABLE, got %v", err)
	}
	want := "Environment variable 'DB_HOST' (string) is not declared.\nVariable description: Database host"
	if err.Error() != want {
		t.Errorf("expected %q, got %q", want, err.Error())
	}
	if _, ok := v.Value(); ok {
		t.Error("expected no stored value after failure")
	}
	if v.Outcome() != OutcomeFailed {
		t.Errorf("expected outcome failed, got %q", v.Outcome())
	}
}

func TestLoad_MissingWithFallback(t *testing.T) {
	var buf bytes.Buffer
	v := New("BYPASS_EMAILS", boolConv).
		WithFallback(false).
		WithLookup(MapLookup{}).
		WithLogger(newTestLogger(&buf))

	got, err := v.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got {
		t.Error("expected fallback false")
	}
	if stored, ok := v.Value(); !ok || stored {
		t.Error("expected fallback to be stored")
	}
	if v.Outcome() != OutcomeFallbackMissing {
		t.Errorf("expected outcome fallback_missing, got %q", v.Outcome())
	}
	want := "Environment variable 'BYPASS_EMAILS' is not available. Using fallback 'false' instead."
	if !strings.Contains(buf.String(), want) {
		t.Errorf("expected diagnostic %q, got %q", want, buf.String())
	}
	if !strings.Contains(buf.String(), `"level":"warn"`) {
		t.Errorf("expected warn level, got %q", buf.String())
	}
}

func TestLoad_ZeroValueFallbacksCount(t *testing.T) {
	t.Run("int zero", func(t *testing.T) {
		got, err := New("N", intConv).WithFallback(0).WithLookup(MapLookup{}).
			WithLogger(logger.NewNop()).Load()
		if err != nil || got != 0 {
			t.Errorf("expected 0 without error, got %d, %v", got, err)
		}
	})
	t.Run("empty string", func(t *testing.T) {
		got, err := New("S", stringConv).WithFallback("").WithLookup(MapLookup{}).
			WithLogger(logger.NewNop()).Load()
		if err != nil || got != "" {
			t.Errorf("expected empty string without error, got %q, %v", got, err)
		}
	})
}

func TestLoad_FallbackForAbsentKeysNeverFails(t *testing.T) {
	for _, fallback := range []int{-1, 0, 1, 80, 65535, 1 << 30} {
		key := fmt.Sprintf("ABSENT_%d", fallback)
		got, err := New(key, intConv).WithFallback(fallback).
			WithLookup(MapLookup{}).WithLogger(logger.NewNop()).Load()
		if err != nil {
			t.Errorf("%s: unexpected error %v", key, err)
		}
		if got != fallback {
			t.Errorf("%s: expected %d, got %d", key, fallback, got)
		}
	}
}

func TestLoad_EmptyStringIsPresent(t *testing.T) {
	lookup := dotenv(t, "EMPTY=\n")

	v := New("EMPTY", intConv).WithLookup(lookup)
	_, err := v.Load()
	if !errors.HasCode(err, errors.ErrCodeInvalidFormat) {
		t.Fatalf("expected empty value to reach the converter and fail format, got %v", err)
	}

	s, err := New("EMPTY", stringConv).WithLookup(lookup).Load()
	if err != nil || s != "" {
		t.Errorf("expected empty string resolved, got %q, %v", s, err)
	}
}

func TestLoad_ParseFailureWithoutFallback(t *testing.T) {
	v := New("PORT", intConv).
		WithDescription("HTTP port").
		WithLookup(dotenv(t, "PORT=abc"))

	_, err := v.Load()
	if err == nil {
		t.Fatal("expected parse error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeInvalidFormat {
		t.Fatalf("expected INVALID_FORMAT, got %v", err)
	}
	lines := strings.Split(appErr.Message, "\n")
	if lines[0] != "Unable to convert environment variable PORT = 'abc' (String) to 'int'." {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if lines[1] != "Variable description: HTTP port" {
		t.Errorf("unexpected description line %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "Exception: ") {
		t.Errorf("expected exception line, got %q", lines[2])
	}
}

func TestLoad_ParseFailureWithFallback(t *testing.T) {
	var buf bytes.Buffer
	v := New("PORT", intConv).
		WithFallback(3000).
		WithLookup(dotenv(t, "PORT=abc")).
		WithLogger(newTestLogger(&buf))

	got, err := v.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 3000 {
		t.Errorf("expected fallback 3000, got %d", got)
	}
	if v.Outcome() != OutcomeFallbackInvalid {
		t.Errorf("expected outcome fallback_invalid, got %q", v.Outcome())
	}
	want := "Failed to parse environment variable 'PORT'. Using fallback '3000' instead."
	if !strings.Contains(buf.String(), want) {
		t.Errorf("expected diagnostic %q, got %q", want, buf.String())
	}
	if !strings.Contains(buf.String(), `"fallback":"3000"`) {
		t.Errorf("expected fallback field, got %q", buf.String())
	}
}

func TestLoad_ConstraintFailure(t *testing.T) {
	short := ConverterFunc[string](func(raw string, ctx Context) (string, error) {
		if len(raw) > 2 {
			return "", errors.ConstraintViolation(fmt.Sprintf("Variable '%s' (%s) is too long.", ctx.Key(), raw))
		}
		return raw, nil
	})
	lookup := dotenv(t, "CODE=abc")

	_, err := New("CODE", short).WithLookup(lookup).Load()
	if !errors.HasCode(err, errors.ErrCodeConstraintViolation) {
		t.Fatalf("expected CONSTRAINT_VIOLATION, got %v", err)
	}
	if err.Error() != "Variable 'CODE' (abc) is too long." {
		t.Errorf("expected converter message to pass through, got %q", err.Error())
	}

	got, err := New("CODE", short).WithFallback("ok").WithLookup(lookup).
		WithLogger(logger.NewNop()).Load()
	if err != nil || got != "ok" {
		t.Errorf("expected fallback 'ok', got %q, %v", got, err)
	}
}

func TestLoad_ForeignErrorBecomesFormatFailure(t *testing.T) {
	cause := fmt.Errorf("not a color")
	conv := ConverterFunc[string](func(string, Context) (string, error) {
		return "", cause
	})

	_, err := New("COLOR", conv).WithLookup(MapLookup{"COLOR": "mauve"}).Load()
	appErr, ok := errors.AsAppError(err)
	if !ok || appErr.Code != errors.ErrCodeInvalidFormat {
		t.Fatalf("expected INVALID_FORMAT, got %v", err)
	}
	if appErr.Cause != cause {
		t.Error("expected original error as cause")
	}
	if !strings.Contains(appErr.Message, "Exception: not a color") {
		t.Errorf("expected cause in message, got %q", appErr.Message)
	}

	got, err := New("COLOR", conv).WithFallback("red").
		WithLookup(MapLookup{"COLOR": "mauve"}).WithLogger(logger.NewNop()).Load()
	if err != nil || got != "red" {
		t.Errorf("expected fallback 'red', got %q, %v", got, err)
	}
}

func TestLoad_NonRecoverableErrorIgnoresFallback(t *testing.T) {
	conv := ConverterFunc[string](func(string, Context) (string, error) {
		return "", errors.Internal(fmt.Errorf("converter misconfigured"))
	})

	_, err := New("K", conv).WithFallback("fb").
		WithLookup(MapLookup{"K": "v"}).WithLogger(logger.NewNop()).Load()
	if !errors.HasCode(err, errors.ErrCodeInternal) {
		t.Errorf("expected INTERNAL_ERROR to propagate despite fallback, got %v", err)
	}
}

func TestLoad_ConverterPanicIsNotMasked(t *testing.T) {
	conv := ConverterFunc[string](func(string, Context) (string, error) {
		panic("bug")
	})

	defer func() {
		if recover() == nil {
			t.Error("expected converter panic to propagate")
		}
	}()
	_, _ = New("K", conv).WithFallback("fb").WithLookup(MapLookup{"K": "v"}).Load()
}

func TestLoad_ConverterSeesKeyAndDescription(t *testing.T) {
	var gotKey, gotDesc string
	conv := ConverterFunc[string](func(raw string, ctx Context) (string, error) {
		gotKey, gotDesc = ctx.Key(), ctx.Description()
		return raw, nil
	})

	_, err := New("API_KEY", conv).WithDescription("Used for X").
		WithLookup(MapLookup{"API_KEY": "k"}).Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotKey != "API_KEY" || gotDesc != "Used for X" {
		t.Errorf("expected context API_KEY/Used for X, got %s/%s", gotKey, gotDesc)
	}
}

// Load is not idempotent: a second call re-reads the source.
func TestLoad_SecondCallRereadsSource(t *testing.T) {
	lookup := MapLookup{"MODE": "first"}
	v := New("MODE", stringConv).WithLookup(lookup)

	if got, _ := v.Load(); got != "first" {
		t.Fatalf("expected 'first', got %q", got)
	}

	lookup["MODE"] = "second"
	got, err := v.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "second" {
		t.Errorf("expected second Load to return 'second', got %q", got)
	}
	if stored, _ := v.Value(); stored != "second" {
		t.Errorf("expected stored value overwritten, got %q", stored)
	}
}

func TestLoad_FailedReloadClearsValue(t *testing.T) {
	lookup := MapLookup{"WORKERS": "4"}
	v := New("WORKERS", intConv).WithLookup(lookup)

	if got, err := v.Load(); err != nil || got != 4 {
		t.Fatalf("expected 4, got %d, %v", got, err)
	}

	lookup["WORKERS"] = "four"
	if _, err := v.Load(); err == nil {
		t.Fatal("expected second Load to fail")
	}
	if stored, loaded := v.Value(); loaded || stored != 0 {
		t.Errorf("expected (0, false) after failed Load, got (%d, %v)", stored, loaded)
	}
	if v.Outcome() != OutcomeFailed {
		t.Errorf("expected outcome %q, got %q", OutcomeFailed, v.Outcome())
	}
}

func TestLoad_RecorderReceivesOutcomes(t *testing.T) {
	got := map[string]Outcome{}
	rec := RecorderFunc(func(key string, o Outcome) { got[key] = o })
	lookup := dotenv(t, "GOOD=1\nBAD=x\n")
	nop := logger.NewNop()

	_, _ = New("GOOD", intConv).WithLookup(lookup).WithRecorder(rec).Load()
	_, _ = New("BAD", intConv).WithFallback(1).WithLookup(lookup).WithRecorder(rec).WithLogger(nop).Load()
	_, _ = New("GONE", intConv).WithFallback(1).WithLookup(lookup).WithRecorder(rec).WithLogger(nop).Load()
	_, _ = New("FAIL", intConv).WithLookup(lookup).WithRecorder(rec).Load()

	want := map[string]Outcome{
		"GOOD": OutcomeResolved,
		"BAD":  OutcomeFallbackInvalid,
		"GONE": OutcomeFallbackMissing,
		"FAIL": OutcomeFailed,
	}
	for k, o := range want {
		if got[k] != o {
			t.Errorf("%s: expected %q, got %q", k, o, got[k])
		}
	}
}

func TestMustLoad(t *testing.T) {
	if got := New("N", intConv).WithLookup(MapLookup{"N": "7"}).MustLoad(); got != 7 {
		t.Errorf("expected 7, got %d", got)
	}

	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.HasCode(err, errors.ErrCodeMissingVariable) {
			t.Errorf("expected panic with MISSING_VARIABLE, got %v", r)
		}
	}()
	New("N", intConv).WithLookup(MapLookup{}).MustLoad()
}

func TestNew_Panics(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"empty key", func() { New("", stringConv) }},
		{"nil converter", func() { New[string]("K", nil) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.fn()
		})
	}
}

func TestAccessors(t *testing.T) {
	v := New("K", intConv).WithDescription("desc")
	if v.Key() != "K" || v.Description() != "desc" {
		t.Errorf("unexpected key/description %q/%q", v.Key(), v.Description())
	}
	if _, ok := v.Fallback(); ok {
		t.Error("expected no fallback configured")
	}
	v.WithFallback(0)
	if fb, ok := v.Fallback(); !ok || fb != 0 {
		t.Error("expected zero fallback to be configured")
	}
}
