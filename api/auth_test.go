package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sharecare/share-care-api/external/identity"
	"github.com/sharecare/share-care-api/schema"
)

func TestBearerToken(t *testing.T) {
	token, err := bearerToken("Bearer abc.def.ghi")
	assert.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	token, err = bearerToken("bearer abc")
	assert.NoError(t, err)
	assert.Equal(t, "abc", token)

	_, err = bearerToken("")
	assert.Equal(t, errMissingAuthorization, err)

	for _, header := range []string{"Bearer", "Bearer ", "Basic abc", "Bearer a b", "abc"} {
		_, err = bearerToken(header)
		assert.Equal(t, errMalformedBearer, err, header)
	}
}

func TestAuthMissingCredential(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl, true)

	w := ts.do("GET", "/myAddedFoods?uid=user-1", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong status code")
	assert.Equal(t, errorInvalidAuthorizationFormat, decodeError(t, w))

	w = ts.do("GET", "/foods/5e8bf47a0ff4f2d27df71bb5", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong status code")
}

func TestAuthInvalidToken(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl, true)

	ts.verifier.EXPECT().Verify(gomock.Any(), "expired").Return("", fmt.Errorf("%w: token is expired", identity.ErrInvalidToken)).Times(1)

	w := ts.do("GET", "/myAddedFoods?uid=user-1", "", "expired")
	assert.Equal(t, http.StatusUnauthorized, w.Code, "wrong status code")
	assert.Equal(t, errorUnauthorized, decodeError(t, w))
}

func TestAuthVerifierUnavailable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl, true)

	ts.verifier.EXPECT().Verify(gomock.Any(), testToken).Return("", fmt.Errorf("%w: fetch certificates", identity.ErrUnavailable)).Times(1)
	w := ts.do("GET", "/myAddedFoods?uid=user-1", "", testToken)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "wrong status code")
	assert.Equal(t, errorIdentityUnavailable, decodeError(t, w))

	ts.verifier.EXPECT().Verify(gomock.Any(), testToken).Return("", context.DeadlineExceeded).Times(1)
	w = ts.do("GET", "/myAddedFoods?uid=user-1", "", testToken)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code, "wrong status code")
}

func TestAuthVerifyHasDeadline(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl, true)

	ts.verifier.EXPECT().Verify(gomock.Any(), testToken).DoAndReturn(func(ctx context.Context, token string) (string, error) {
		_, ok := ctx.Deadline()
		assert.True(t, ok, "verification without deadline")
		return testRequester, nil
	}).Times(1)
	ts.store.EXPECT().MyFoods(gomock.Any(), gomock.Any()).Return([]schema.Food{}, nil).Times(1)

	w := ts.do("GET", "/myAddedFoods?uid=user-1", "", testToken)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")
}

func TestMyAddedFoodsOwnershipMismatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl, true)

	// no store expectation: a mismatch must never reach the store
	ts.expectRequester()
	w := ts.do("GET", "/myAddedFoods?uid=user-2", "", testToken)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
	assert.Equal(t, errorForbidden, decodeError(t, w))

	ts.expectRequester()
	w = ts.do("GET", "/myAddedFoods", "", testToken)
	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}

func TestMyAddedFoods(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl, true)

	foods := []schema.Food{
		{UID: testRequester, FoodName: "rice", Quantity: "3", Status: schema.FoodAvailable},
	}

	ts.expectRequester()
	ts.store.EXPECT().MyFoods(gomock.Any(), schema.FoodFilter{
		UID:    testRequester,
		Status: schema.FoodAvailable,
	}).Return(foods, nil).Times(1)

	w := ts.do("GET", "/myAddedFoods?uid=user-1&status=Available&foodName=ignored", "", testToken)
	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp []schema.Food
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, foods, jResp, "wrong data")

	ts.expectRequester()
	w = ts.do("GET", "/myAddedFoods?uid=user-1&status=Gone", "", testToken)
	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}
