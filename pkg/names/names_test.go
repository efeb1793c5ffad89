package names

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/require"
)

func TestTransforms(t *testing.T) {
	tests := []struct {
		in     string
		pascal string
		camel  string
		snake  string
	}{
		{"user_profile", "UserProfile", "userProfile", "user_profile"},
		// separator-free input is a single word: the remainder is lowercased
		{"UserProfile", "Userprofile", "userprofile", "user_profile"},
		{"user profile", "UserProfile", "userProfile", "user_profile"},
		{"user-profile", "UserProfile", "userProfile", "user_profile"},
		{"auth", "Auth", "auth", "auth"},
		{"Auth", "Auth", "auth", "auth"},
		{"XML", "Xml", "xml", "x_m_l"},
		{"my  name", "MyName", "myName", "my_name"},
		{"_user", "User", "user", "user"},
		// only a leading underscore is stripped; a trailing one survives
		{"user_", "User", "user", "user_"},
		{"", "", "", ""},
		{"   ", "", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			require.Equal(t, tt.pascal, ToPascal(tt.in))
			require.Equal(t, tt.camel, ToCamel(tt.in))
			require.Equal(t, tt.snake, ToSnake(tt.in))
		})
	}
}

func TestSnakeIdempotent(t *testing.T) {
	for _, s := range []string{"user_profile", "auth", "a_b_c", "order_item", "user_"} {
		require.Equal(t, s, ToSnake(s))
		require.Equal(t, s, ToSnake(ToSnake(s)))
	}
}

// Pascal and camel forms must agree on everything except the case of the
// first character.
func TestPascalCamelAgree(t *testing.T) {
	for _, s := range []string{"user_profile", "auth", "my-name thing", "UserProfile", "a"} {
		p, c := ToPascal(s), ToCamel(s)
		require.NotEmpty(t, p)
		require.Equal(t, unicode.ToUpper(rune(c[0])), rune(p[0]))
		require.Equal(t, p[1:], c[1:], "input %q", s)
	}
}

func TestPlurals(t *testing.T) {
	require.Equal(t, "userProfiles", ToPluralCamel("user_profile"))
	require.Equal(t, "auths", ToPluralCamel("auth"))
	require.Equal(t, "user_profiles", ToPluralSnake("UserProfile"))
}

func TestIsBlank(t *testing.T) {
	require.True(t, IsBlank(""))
	require.True(t, IsBlank("  \t"))
	require.False(t, IsBlank("auth"))
}
