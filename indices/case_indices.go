package indices

import (
	"fmt"

	"caseflow/domain"
	"caseflow/es"

	"github.com/fundwit/go-commons/types"
	"github.com/sirupsen/logrus"
)

var (
	CaseIndexName = "cases"
)

type CaseDocument struct {
	domain.ApplicationCase
}

type BatchActionError map[types.ID]error

func (e BatchActionError) Error() string {
	return fmt.Sprintf("%v", map[types.ID]error(e))
}

func IndexCases(cases []domain.ApplicationCase) error {
	docs := make([]CaseDocument, 0, len(cases))
	for _, c := range cases {
		docs = append(docs, CaseDocument{ApplicationCase: c})
	}

	if err := saveCaseDocuments(docs); err != nil {
		return err
	}
	return nil
}

func saveCaseDocuments(caseDocs []CaseDocument) BatchActionError {
	errs := BatchActionError{}

	for _, doc := range caseDocs {
		if err := es.IndexFunc(CaseIndexName, doc.ID, doc, indexRobot); err != nil {
			errs[doc.ID] = err
			logrus.Warnf("index case %d %s %s\n", doc.ID, doc.Identifier, err)
		} else {
			logrus.Infof("index case %d %s successfully\n", doc.ID, doc.Identifier)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
