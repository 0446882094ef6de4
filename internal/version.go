package internal

// Version is the current csvtrans release version
const Version = "0.3.0"
