package otp

import (
	"strings"

	"otpbridge-service/internal/app/contracts"
	"otpbridge-service/internal/pkg/utils"
)

// ParseCountryCodePrefixes normalizes the comma-separated allow-list from
// configuration. Entries are trimmed, get a leading '+' when missing, and
// empty entries are dropped.
func ParseCountryCodePrefixes(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var prefixes []string
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		prefixes = append(prefixes, utils.EnsureLeadingPlus(entry))
	}
	return prefixes
}

// ChooseChannel picks the delivery transport for a phone number.
//
// SMS wins whenever WhatsApp is not an option: no WhatsApp template
// configured, or no allow-list to route against. With both present, a number
// matching an allow-listed country-code prefix stays on SMS and everything
// else goes to WhatsApp.
func ChooseChannel(phone string, whatsAppEnabled bool, smsCountryCodePrefixes []string) contracts.DeliveryChannel {
	if !whatsAppEnabled {
		return contracts.ChannelSMS
	}
	if len(smsCountryCodePrefixes) == 0 {
		return contracts.ChannelSMS
	}

	normalized := utils.NormalizeRoutingPhone(phone)
	for _, prefix := range smsCountryCodePrefixes {
		if strings.HasPrefix(normalized, prefix) {
			return contracts.ChannelSMS
		}
	}
	return contracts.ChannelWhatsApp
}
