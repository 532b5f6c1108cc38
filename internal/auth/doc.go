// Package auth provides dual-channel authentication for customers and the
// single configured seller.
//
// Every request is classified into a channel by the x-mobile-app header:
//
//	x-mobile-app: true   -> mobile channel, token in "Authorization: Bearer <token>"
//	anything else        -> web channel, token in an HttpOnly cookie
//
// Tokens are stateless HS256 JWTs carrying either an "id" claim (customer) or an
// "email" claim (seller), valid for seven days. Validity depends only on the
// signature and expiry; there is no server-side session table.
//
// # Configuration
//
//	JWT_SECRET=<random string>        # required
//	SELLER_EMAIL=seller@example.com   # seller credential pair
//	SELLER_PASSWORD=...
//	APP_ENV=production                # Secure + SameSite=None cookies
//	AUTH_BCRYPT_COST=10
//
// # Usage
//
//	tokens := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)
//	service := auth.NewService(usersRepo, cfg.Auth)
//	mw := auth.NewMiddleware(tokens, cfg.Auth, logger)
//
//	api.GET("/user/is-auth", mw.RequireUser(), userController.IsAuth)
//	api.GET("/seller/is-auth", mw.RequireSeller(), sellerController.IsAuth)
//
// Extract the identity in handlers:
//
//	userID := auth.GetUserID(c)
package auth
