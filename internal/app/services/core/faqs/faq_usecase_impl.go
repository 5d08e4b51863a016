package faqs

import (
	"context"
	"sefasevim-service/internal/app/contracts"
	"sefasevim-service/internal/app/models"
	"sefasevim-service/internal/pkg/constvars"
	"sefasevim-service/internal/pkg/dto/requests"
	"sefasevim-service/internal/pkg/dto/responses"
	"sync"
	"time"

	"go.uber.org/zap"
)

var defaultFaqs = []models.FaqItem{
	{
		Question: "Seanslar ne kadar sürüyor?",
		Answer:   "Bireysel terapi seansları yaklaşık 50 dakika sürer.",
	},
	{
		Question: "Online terapi yüz yüze terapi kadar etkili mi?",
		Answer:   "Araştırmalar online terapinin birçok alanda yüz yüze terapiyle benzer sonuçlar verdiğini gösteriyor.",
	},
	{
		Question: "Randevumu nasıl iptal edebilirim?",
		Answer:   "Randevunuzdan en az 24 saat önce iletişim kanallarından ulaşarak iptal edebilirsiniz.",
	},
}

type faqUsecase struct {
	FaqRepository contracts.FaqRepository
	Log           *zap.Logger
}

var (
	faqUsecaseInstance contracts.FaqUsecase
	onceFaqUsecase     sync.Once
)

func NewFaqUsecase(faqRepository contracts.FaqRepository, logger *zap.Logger) contracts.FaqUsecase {
	onceFaqUsecase.Do(func() {
		faqUsecaseInstance = &faqUsecase{
			FaqRepository: faqRepository,
			Log:           logger,
		}
	})
	return faqUsecaseInstance
}

func (uc *faqUsecase) FindAll(ctx context.Context) ([]responses.FaqItem, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("faqUsecase.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	document, err := uc.FaqRepository.Find(ctx)
	if err != nil {
		return nil, err
	}

	faqs := defaultFaqs
	if document != nil {
		faqs = document.Faqs
	}

	response := make([]responses.FaqItem, 0, len(faqs))
	for _, faq := range faqs {
		response = append(response, responses.FaqItem{
			Question: faq.Question,
			Answer:   faq.Answer,
		})
	}
	return response, nil
}

func (uc *faqUsecase) ReplaceAll(ctx context.Context, request *requests.UpdateFaqs) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("faqUsecase.ReplaceAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("faq_count", len(request.Faqs)),
	)

	faqs := make([]models.FaqItem, 0, len(request.Faqs))
	for _, faq := range request.Faqs {
		faqs = append(faqs, models.FaqItem{
			Question: faq.Question,
			Answer:   faq.Answer,
		})
	}

	return uc.FaqRepository.Replace(ctx, &models.FaqDocument{
		Faqs:      faqs,
		UpdatedAt: time.Now(),
	})
}
