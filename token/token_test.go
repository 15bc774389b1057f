package token_test

import (
	"testing"

	"github.com/jrsteele09/go-oauth1-client/token"
	"github.com/stretchr/testify/require"
)

func TestParseBody(t *testing.T) {
	tok, err := token.ParseBody("oauth_token=abc123&oauth_token_secret=shhh&oauth_callback_confirmed=true")
	require.NoError(t, err)

	require.Equal(t, "abc123", tok.Token)
	require.Equal(t, "shhh", tok.TokenSecret)
	require.Equal(t, "true", tok.Extra("oauth_callback_confirmed"))
	require.Empty(t, tok.Extra("missing"))
}

func TestParseBodyDecodesValues(t *testing.T) {
	tok, err := token.ParseBody("oauth_token=a%2Fb&oauth_token_secret=s%20s")
	require.NoError(t, err)

	require.Equal(t, "a/b", tok.Token)
	require.Equal(t, "s s", tok.TokenSecret)
}

func TestParseBodyWithoutToken(t *testing.T) {
	_, err := token.ParseBody("oauth_token_secret=shhh")
	require.Error(t, err)
}

func TestExtraParamsReturnsACopy(t *testing.T) {
	tok, err := token.ParseBody("oauth_token=abc123&screen_name=jdoe")
	require.NoError(t, err)

	params := tok.ExtraParams()
	require.Equal(t, map[string]string{"screen_name": "jdoe"}, params)

	params["screen_name"] = "mutated"
	require.Equal(t, "jdoe", tok.Extra("screen_name"))
}
