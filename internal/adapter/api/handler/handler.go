package handler

import (
	"aqarverse/internal/infrastructure/websocket"
	"aqarverse/internal/usecase"
)

var (
	authHandler     *AuthHandler
	propertyHandler *PropertyHandler
	adminHandler    *AdminHandler
	favoriteHandler *FavoriteHandler
	profileHandler  *ProfileHandler
	partnerHandler  *PartnerHandler
	streamHandler   *StreamHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	propertyUseCase *usecase.PropertyUseCase,
	favoriteUseCase *usecase.FavoriteUseCase,
	profileUseCase *usecase.ProfileUseCase,
	streamManager *websocket.Manager,
) {
	authHandler = NewAuthHandler(authUseCase)
	propertyHandler = NewPropertyHandler(propertyUseCase)
	adminHandler = NewAdminHandler(propertyUseCase)
	favoriteHandler = NewFavoriteHandler(favoriteUseCase)
	profileHandler = NewProfileHandler(profileUseCase)
	partnerHandler = NewPartnerHandler(profileUseCase)
	streamHandler = NewStreamHandler(propertyUseCase, favoriteUseCase, streamManager)
}

func GetAuthHandler() *AuthHandler {
	return authHandler
}

func GetPropertyHandler() *PropertyHandler {
	return propertyHandler
}

func GetAdminHandler() *AdminHandler {
	return adminHandler
}

func GetFavoriteHandler() *FavoriteHandler {
	return favoriteHandler
}

func GetProfileHandler() *ProfileHandler {
	return profileHandler
}

func GetPartnerHandler() *PartnerHandler {
	return partnerHandler
}

func GetStreamHandler() *StreamHandler {
	return streamHandler
}
