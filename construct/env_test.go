package construct

import (
	"testing"
)

type envTest struct {
	in   string
	want string
}

func TestEnvHandler(t *testing.T) {
	t.Setenv("CONFMIX_TEST_HOST", "db.internal")
	t.Setenv("CONFMIX_TEST_PORT", "5432")
	t.Setenv("CONFMIX_TEST_DEBUG", "true")
	t.Setenv("CONFMIX_TEST_RATIO", "0.5")
	t.Setenv("CONFMIX_TEST_NULL", "null")

	ets := []envTest{
		{in: `!ENV CONFMIX_TEST_HOST`, want: `"db.internal"`},
		// values parse as YAML scalars
		{in: `!ENV CONFMIX_TEST_PORT`, want: `5432`},
		{in: `!ENV CONFMIX_TEST_DEBUG`, want: `true`},
		{in: `!ENV CONFMIX_TEST_RATIO`, want: `0.5`},
		{in: `!ENV CONFMIX_TEST_NULL`, want: `null`},
		// unset without a default is null
		{in: `!ENV CONFMIX_TEST_UNSET`, want: `null`},
		// single-element sequence has no default
		{in: `!ENV [CONFMIX_TEST_UNSET]`, want: `null`},
		// first set variable wins
		{in: `!ENV [CONFMIX_TEST_HOST, CONFMIX_TEST_PORT, fallback]`, want: `"db.internal"`},
		{in: `!ENV [CONFMIX_TEST_UNSET, CONFMIX_TEST_PORT, fallback]`, want: `5432`},
		// all unset yields the default
		{in: `!ENV [CONFMIX_TEST_UNSET, fallback]`, want: `"fallback"`},
		{in: `!ENV [CONFMIX_TEST_UNSET, 42]`, want: `42`},
		// inside a document
		{in: "db:\n  host: !ENV CONFMIX_TEST_HOST\n", want: `{"db":{"host":"db.internal"}}`},
	}
	for _, et := range ets {
		cfg := NewConfig(ModeUnsafe)
		cfg.Bind("!ENV", EnvHandler())
		v, err := Parse(cfg, []byte(et.in))
		if err != nil {
			t.Errorf("%q: %v", et.in, err)
			continue
		}
		if got := jstr(t, v); got != et.want {
			t.Errorf("%q: got %s want %s", et.in, got, et.want)
		}
	}
}

func TestEnvHandlerEmptySequence(t *testing.T) {
	cfg := NewConfig(ModeUnsafe)
	cfg.Bind("!ENV", EnvHandler())
	if _, err := Parse(cfg, []byte(`!ENV []`)); err == nil {
		t.Error("expected error")
	}
}
