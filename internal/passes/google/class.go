package google

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	googleauth "golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/walletobjects/v1"
)

// IssuerScope grants access to the issuer's classes and objects.
const IssuerScope = "https://www.googleapis.com/auth/wallet_object.issuer"

// NewService authenticates with service account credentials.
func NewService(ctx context.Context, credentialsJSON []byte) (*walletobjects.Service, error) {
	conf, err := googleauth.JWTConfigFromJSON(credentialsJSON, IssuerScope)
	if err != nil {
		return nil, fmt.Errorf("parse service account credentials: %w", err)
	}
	svc, err := walletobjects.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("create wallet service: %w", err)
	}
	return svc, nil
}

func moduleRef(id string) *walletobjects.TemplateItem {
	return &walletobjects.TemplateItem{
		FirstValue: &walletobjects.FieldSelector{
			Fields: []*walletobjects.FieldReference{
				{FieldPath: "object.textModulesData['" + id + "']"},
			},
		},
	}
}

// NewClass returns the class definition: two card rows laying out the text
// modules set by NewObject.
func NewClass(issuerID, classSuffix string) *walletobjects.GenericClass {
	return &walletobjects.GenericClass{
		Id: ClassID(issuerID, classSuffix),
		ClassTemplateInfo: &walletobjects.ClassTemplateInfo{
			CardTemplateOverride: &walletobjects.CardTemplateOverride{
				CardRowTemplateInfos: []*walletobjects.CardRowTemplateInfo{
					{
						TwoItems: &walletobjects.CardRowTwoItems{
							StartItem: moduleRef(ModuleMemberCode),
							EndItem:   moduleRef(ModuleExpiration),
						},
					},
					{
						ThreeItems: &walletobjects.CardRowThreeItems{
							StartItem:  moduleRef(ModuleEnglishName),
							MiddleItem: moduleRef(ModuleMotorcycle),
							EndItem:    moduleRef(ModuleYear),
						},
					},
				},
			},
		},
	}
}

// EnsureClass updates class, or inserts it when it does not exist yet. It
// reports whether the class was created.
func EnsureClass(ctx context.Context, svc *walletobjects.Service, class *walletobjects.GenericClass) (bool, error) {
	_, err := svc.Genericclass.Get(class.Id).Context(ctx).Do()
	if err == nil {
		if _, err := svc.Genericclass.Update(class.Id, class).Context(ctx).Do(); err != nil {
			return false, fmt.Errorf("update class %s: %w", class.Id, err)
		}
		return false, nil
	}

	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) || apiErr.Code != http.StatusNotFound {
		return false, fmt.Errorf("get class %s: %w", class.Id, err)
	}

	if _, err := svc.Genericclass.Insert(class).Context(ctx).Do(); err != nil {
		return false, fmt.Errorf("insert class %s: %w", class.Id, err)
	}
	return true, nil
}
