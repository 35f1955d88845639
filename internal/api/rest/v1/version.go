package v1

// BasePath is the route prefix of version 1 of the crypto signer REST API
const BasePath = "/api/v1/cs"
