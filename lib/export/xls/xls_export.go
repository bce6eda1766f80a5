package xlsexport

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	"chef-karigar-backend/db"
	filestorage "chef-karigar-backend/lib/file-storage"
	pipelinestore "chef-karigar-backend/lib/pipeline/store"
	staffstore "chef-karigar-backend/lib/staff/store"
	"chef-karigar-backend/models"
	dbmodels "chef-karigar-backend/models/db"
)

type Provider interface {
	StaffListToXls(filter dbmodels.StaffFilter) (*bytes.Buffer, error)
	PipelineToXls(status models.BundleStatus) (*bytes.Buffer, error)
	// ArchiveStaffList uploads the roster report to the object store and
	// returns the stored object key.
	ArchiveStaffList(ctx context.Context, filter dbmodels.StaffFilter) (key string, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		staffStore:    staffstore.NewInstance(db.DB),
		pipelineStore: pipelinestore.NewInstance(db.DB),
	}
}

type impl struct {
	staffStore    staffstore.Provider
	pipelineStore pipelinestore.Provider
}

var staffHeaders = []string{"Name", "Phone", "Skill", "Experience (years)", "Rating", "Status", "Current location", "Verified", "Commission total"}

func (i impl) StaffListToXls(filter dbmodels.StaffFilter) (*bytes.Buffer, error) {
	list, err := i.staffStore.List(filter)
	if err != nil {
		return nil, errors.Wrap(err, "error listing staff for export")
	}
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error closing xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err = writeHeader(f, sheet, row, staffHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error writing xlsx header")
	}
	if len(list) != 0 {
		_, err = writeStaffData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "error writing xlsx data")
		}
	}
	f.SetSheetName(sheet, "Staff roster")
	return f.WriteToBuffer()
}

func writeStaffData(f *excelize.File, sheet string, list []dbmodels.StaffMember, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(staffHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Name); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Phone); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Skill); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.ExperienceYears); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Rating); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.CurrentLocation); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, yesNo(item.IsVerified)); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.ServiceCommissionTotal); err != nil {
			return row, err
		}
	}
	return row, nil
}

var pipelineHeaders = []string{"Business", "Role", "Salary", "Candidates", "Status", "Created", "Last action by", "Ghosted"}

func (i impl) PipelineToXls(status models.BundleStatus) (*bytes.Buffer, error) {
	list, err := i.pipelineStore.List(status)
	if err != nil {
		return nil, errors.Wrap(err, "error listing bundles for export")
	}
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("error closing xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err = writeHeader(f, sheet, row, pipelineHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "error writing xlsx header")
	}
	if len(list) != 0 {
		_, err = writePipelineData(f, sheet, list, time.Now(), row)
		if err != nil {
			return nil, errors.Wrap(err, "error writing xlsx data")
		}
	}
	f.SetSheetName(sheet, "Pipeline")
	return f.WriteToBuffer()
}

func writePipelineData(f *excelize.File, sheet string, list []dbmodels.MatchBundle, now time.Time, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(pipelineHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.BusinessName); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Role); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.Salary); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, strings.Join(item.CandidateIDs, ", ")); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, string(item.Status)); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.DateCreated.Format("02.01.2006")); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, item.LastActionBy); err != nil {
			return row, err
		}
		col++
		if err := writeColumn(f, sheet, col, row, yesNo(item.IsGhosted(now))); err != nil {
			return row, err
		}
	}
	return row, nil
}

func (i impl) ArchiveStaffList(ctx context.Context, filter dbmodels.StaffFilter) (string, error) {
	if !filestorage.Instance.IsAvailable() {
		return "", errors.New("report storage is not configured")
	}
	data, err := i.StaffListToXls(filter)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("staff-roster-%s-%s.xlsx", time.Now().Format("20060102"), uuid.NewString())
	if err := filestorage.Instance.UploadReport(ctx, key, data.Bytes()); err != nil {
		return "", err
	}
	return key, nil
}

func yesNo(value bool) string {
	if value {
		return "Yes"
	}
	return "No"
}
