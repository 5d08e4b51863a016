package content

import "sefasevim-service/internal/pkg/constvars"

// defaultSections seed the public site copy until the admin panel saves its
// own version of a section.
var defaultSections = map[string]map[string]string{
	constvars.ContentSectionHero: {
		"title":    "Psikolog Sefa Sevim",
		"subtitle": "Bireysel terapi, çift terapisi ve online psikolojik danışmanlık",
		"cta":      "Randevu Al",
	},
	constvars.ContentSectionAbout: {
		"title": "Hakkımda",
		"body":  "Klinik psikoloji alanında yetişkinlerle bireysel terapi ve çift terapisi yürütüyorum. Seanslar yüz yüze veya online olarak planlanabilir.",
	},
	constvars.ContentSectionOnlineTherapy: {
		"title": "Online Terapi",
		"body":  "Online seanslar görüntülü görüşme üzerinden, yüz yüze seanslarla aynı gizlilik ilkeleriyle yürütülür.",
	},
	constvars.ContentSectionContact: {
		"title":   "İletişim",
		"email":   "iletisim@sefasevim.com",
		"phone":   "+90 555 000 00 00",
		"address": "Kadıköy, İstanbul",
	},
}

func defaultSection(section string) map[string]string {
	fields, ok := defaultSections[section]
	if !ok {
		return nil
	}
	copied := make(map[string]string, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}
