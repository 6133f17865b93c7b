package models

import "fmt"

// WifiSecurity is the security field of a Wi-Fi QR record.
type WifiSecurity string

const (
	WifiSecurityWPA  WifiSecurity = "WPA"
	WifiSecurityWEP  WifiSecurity = "WEP"
	WifiSecurityNone WifiSecurity = "nopass"
)

// BuildWifiPayload encodes network credentials in the de-facto
// WIFI:T:<sec>;S:<ssid>;P:<pass>;; format readable by phone cameras.
func BuildWifiPayload(ssid, password string, security WifiSecurity) string {
	return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;;", security, ssid, password)
}

// BuildContactPayload encodes a minimal vCard 3.0 record with a display name
// and a phone number.
func BuildContactPayload(name, phone string) string {
	return fmt.Sprintf("BEGIN:VCARD\nVERSION:3.0\nFN:%s\nTEL:%s\nEND:VCARD", name, phone)
}
